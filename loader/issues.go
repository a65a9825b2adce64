package loader

import "github.com/lyraproj/issue/issue"

const (
	ParseError        = `LOADER_PARSE_ERROR`
	UnsupportedFormat = `LOADER_UNSUPPORTED_FORMAT`
	MissingKind       = `LOADER_MISSING_KIND`
	DuplicateID       = `LOADER_DUPLICATE_ID`
	ConnectFailed     = `LOADER_CONNECT_FAILED`
)

func init() {
	issue.Hard(ParseError, `%{detail}`)
	issue.Hard(UnsupportedFormat, `format '%{format}' is not supported, expected a version matching '%{expected}'`)
	issue.Hard(MissingKind, `block definition has no kind`)
	issue.Hard(DuplicateID, `block id '%{id}' is used more than once`)
	issue.Hard(ConnectFailed, `cannot place %{block}: %{detail}`)
}
