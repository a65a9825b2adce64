package binding

import "github.com/lyraproj/issue/issue"

const (
	UnresolvedReference = `BINDING_UNRESOLVED_REFERENCE`
	ShadowedDeclaration = `BINDING_SHADOWED_DECLARATION`
	UnusedDeclaration   = `BINDING_UNUSED_DECLARATION`
	UnnormalizedName    = `BINDING_UNNORMALIZED_NAME`
)

func init() {
	issue.Hard(UnresolvedReference, `%{block} refers to '%{name}' but no declaration of it is in scope`)
	issue.Hard(ShadowedDeclaration, `%{block} declares '%{name}' which shadows the declaration in %{shadowed}`)
	issue.Hard(UnusedDeclaration, `%{block} declares '%{name}' but nothing refers to it`)
	issue.Hard(UnnormalizedName, `%{block} refers to '%{name}' which matches '%{declared}' in %{declarator} only after Unicode normalization`)
}
