// Package i18n holds the message catalogs used by the order viewer.
//
// Catalogs map locale -> key -> message and can be loaded from JSON or YAML.
// Lookups fall back from a regional locale ("en-GB") to its base language
// ("en") and then to the catalog fallback locale.
package i18n
