package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vango-dev/pardna/pkg/graphql"
	"github.com/vango-dev/pardna/pkg/pardna"
)

// createVariables mirrors the CreatePardna mutation arguments.
type createVariables struct {
	Name               string               `json:"name"`
	StartDate          *time.Time           `json:"startDate"`
	Duration           *int                 `json:"duration"`
	ContributionAmount *int64               `json:"contributionAmount"`
	BankerFee          *decimal.Decimal     `json:"bankerFee"`
	PaymentFrequency   string               `json:"paymentFrequency"`
	Participants       []pardna.Participant `json:"participants"`
}

// record rebuilds the form record the client validated.
func (v createVariables) record() pardna.Record {
	r := pardna.Record{
		Name:             v.Name,
		Duration:         v.Duration,
		PaymentFrequency: pardna.Frequency(v.PaymentFrequency),
		Participants:     v.Participants,
	}
	if v.StartDate != nil {
		r.StartDate = *v.StartDate
	}
	if v.ContributionAmount != nil {
		r.ContributionAmount = decimal.NullDecimal{Decimal: pardna.FromMinorUnits(*v.ContributionAmount), Valid: true}
	}
	if v.BankerFee != nil {
		r.BankerFee = decimal.NullDecimal{Decimal: *v.BankerFee, Valid: true}
	}
	return r
}

// pardnaJSON is the wire form of a stored pardna.
type pardnaJSON struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	StartDate          string               `json:"startDate"`
	Duration           int                  `json:"duration"`
	ContributionAmount int64                `json:"contributionAmount"`
	BankerFee          json.Number          `json:"bankerFee"`
	PaymentFrequency   string               `json:"paymentFrequency"`
	Participants       []pardna.Participant `json:"participants"`
}

func toJSON(p graphql.Pardna) pardnaJSON {
	participants := p.Participants
	if participants == nil {
		participants = []pardna.Participant{}
	}
	return pardnaJSON{
		ID:                 p.ID,
		Name:               p.Name,
		StartDate:          p.StartDate.Format(time.RFC3339),
		Duration:           p.Duration,
		ContributionAmount: p.ContributionAmount,
		BankerFee:          json.Number(p.BankerFee.String()),
		PaymentFrequency:   string(p.PaymentFrequency),
		Participants:       participants,
	}
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	var req graphql.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, graphql.Response{Errors: []graphql.Error{{Message: "invalid request body: " + err.Error()}}})
		return
	}

	switch operation(req) {
	case graphql.OperationCreatePardna:
		s.createPardna(w, r, req)
	case graphql.OperationPardnas:
		items := s.store.List()
		out := make([]pardnaJSON, len(items))
		for i, p := range items {
			out[i] = toJSON(p)
		}
		writeData(w, map[string]any{"pardnas": out})
	default:
		writeJSON(w, http.StatusOK, graphql.Response{Errors: []graphql.Error{{Message: "unknown operation"}}})
	}
}

func (s *Server) createPardna(w http.ResponseWriter, r *http.Request, req graphql.Request) {
	var vars createVariables
	raw, err := json.Marshal(req.Variables)
	if err == nil {
		err = json.Unmarshal(raw, &vars)
	}
	if err != nil {
		writeJSON(w, http.StatusOK, graphql.Response{Errors: []graphql.Error{{Message: "invalid variables: " + err.Error()}}})
		return
	}

	payload, err := pardna.NewPayload(vars.record())
	if err != nil {
		var invalid *pardna.InvalidRecordError
		if errors.As(err, &invalid) {
			gqlErrs := make([]graphql.Error, 0, len(invalid.Errors))
			for _, path := range invalid.Errors.Paths() {
				gqlErrs = append(gqlErrs, graphql.Error{
					Message: path + ": " + invalid.Errors[path],
					Path:    []any{"createPardna", path},
				})
			}
			writeJSON(w, http.StatusOK, graphql.Response{Errors: gqlErrs})
			return
		}
		writeJSON(w, http.StatusOK, graphql.Response{Errors: []graphql.Error{{Message: err.Error()}}})
		return
	}

	id, err := s.creator.CreatePardna(r.Context(), payload)
	if err != nil {
		s.logger.Error("create failed", "error", err)
		writeJSON(w, http.StatusOK, graphql.Response{Errors: []graphql.Error{{Message: err.Error()}}})
		return
	}
	s.logger.Info("pardna created", "id", id, "participants", len(payload.Participants))
	writeData(w, map[string]any{"createPardna": map[string]string{"id": id}})
}

// operation picks the operation from operationName, falling back to the
// root field named in the query text.
func operation(req graphql.Request) string {
	if req.OperationName != "" {
		return req.OperationName
	}
	switch {
	case strings.Contains(req.Query, "createPardna"):
		return graphql.OperationCreatePardna
	case strings.Contains(req.Query, "pardnas"):
		return graphql.OperationPardnas
	}
	return ""
}

func writeData(w http.ResponseWriter, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, graphql.Response{Errors: []graphql.Error{{Message: err.Error()}}})
		return
	}
	writeJSON(w, http.StatusOK, graphql.Response{Data: raw})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
