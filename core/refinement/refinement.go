// Package refinement turns a raw scene description or a bare conversational
// query into a short, spoken-friendly reply.
//
// Refinement is deliberately non-fatal: when the upstream call fails, clients
// degrade to echoing the source text (vision path) or a fixed apology
// (conversational path) so the user always hears something. Known tradeoff:
// the echoed vision text can be verbose and unpolished; changing that needs
// product sign-off.
package refinement

// Timeout for a single refinement call, in seconds.
const TimeoutSeconds = 8

// QueryType categorizes conversational queries so the reply template can
// match the user's intent.
type QueryType string

const (
	QueryTypeAssistantInfo QueryType = "assistant_info"
	QueryTypeUsageHelp     QueryType = "usage_help"
	QueryTypeGratitude     QueryType = "gratitude"
	QueryTypeGreeting      QueryType = "greeting"
	QueryTypeGeneral       QueryType = "general"
)

// FallbackReply is spoken when refinement fails on the conversational path,
// where there is no source text to echo.
const FallbackReply = "I'm not sure how to respond to that. Could you try asking in a different way?"
