// Package url provides URL normalization utilities for Nautobot API endpoints.
package url

import "strings"

// NormalizeBaseURL handles both URL formats:
// - "https://nautobot.example.com/api" -> strips /api
// - "https://nautobot.example.com/" -> strips the trailing slash
func NormalizeBaseURL(url string) string {
	url = strings.TrimRight(url, "/")
	return strings.TrimSuffix(url, "/api")
}

// APIURL returns the REST API root for a base URL.
func APIURL(baseURL string) string {
	return NormalizeBaseURL(baseURL) + "/api"
}
