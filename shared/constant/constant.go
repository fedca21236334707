package constant

const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"

	OtelQueryAttributeKey   = "db.query"
	OtelSessionAttributeKey = "session.id"

	Empty = ""
)
