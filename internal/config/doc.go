// Package config provides configuration parsing for the pardna CLI.
//
// The configuration is stored in pardna.json or pardna.yaml at the project
// root. This package handles loading, saving, and validating it.
//
// # Configuration File Structure
//
//	{
//	  "api": {
//	    "endpoint": "http://localhost:4000/graphql",
//	    "timeout": "10s"
//	  },
//	  "currencySymbol": "£",
//	  "defaults": {
//	    "duration": 12,
//	    "contributionAmount": 10,
//	    "bankerFee": 10,
//	    "paymentFrequency": "MONTHLY"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "dev": {
//	    "host": "127.0.0.1",
//	    "port": 4000
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Endpoint:", cfg.API.Endpoint)
package config
