package graphql

const createPardnaMutation = `mutation CreatePardna(
  $name: String!
  $startDate: DateTime!
  $duration: Int!
  $contributionAmount: Int!
  $bankerFee: Float!
  $paymentFrequency: PaymentFrequency!
  $participants: [ParticipantInput!]!
) {
  createPardna(
    name: $name
    startDate: $startDate
    duration: $duration
    contributionAmount: $contributionAmount
    bankerFee: $bankerFee
    paymentFrequency: $paymentFrequency
    participants: $participants
  ) {
    id
  }
}`

const pardnasQuery = `query Pardnas {
  pardnas {
    id
    name
    startDate
    duration
    contributionAmount
    bankerFee
    paymentFrequency
    participants {
      name
      email
    }
  }
}`

// Operation names understood by the API.
const (
	OperationCreatePardna = "CreatePardna"
	OperationPardnas      = "Pardnas"
)
