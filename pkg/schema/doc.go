// Package schema reads validation schemas from YAML, JSON and TOML documents.
//
// A document is a single mapping from schema key to rule options, kept in
// document order:
//
//	age:
//	  type: int
//	  range: 18-65
//	"/^tag_/":
//	  type: int
//	  remove_original: true
//	nick:
//	  required: false
//	  default: anon
//
// Documents are checked against an embedded JSON Schema before any rule is
// decoded, so misspelled options and wrongly typed values are reported with
// their location. Rule options are then decoded with validator.RuleFromMap.
package schema
