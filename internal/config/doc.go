// Package config loads the HCL configuration of an extraction run.
//
// Example:
//
//	big_blind = 4
//	log_level = "info"
//
//	input {
//	  dir     = "poker_log"
//	  pattern = "*.csv"
//	}
//
//	names {
//	  file    = "names.yaml"
//	  entries = { "alice_2" = "alice" }
//	}
//
//	output {
//	  path          = "pk_pre_flop_clean.csv"
//	  format        = "csv"
//	  include_cards = false
//	}
package config
