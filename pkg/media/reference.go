package media

import "strings"

const (
	// Host is the delivery host of the media service.
	Host = "res.cloudinary.com"

	// Folder is the logical folder all item images are uploaded under.
	Folder = "freezer-inventory"

	// eagerTransformation is the rendition every stored image URL must
	// point to: 250px wide, square fill crop with subject-aware gravity,
	// webp at quality 90.
	eagerTransformation = "w_250,ar_1.0,c_fill,g_food,f_webp,q_90"
)

type ReferenceKind int

const (
	KindUnknown ReferenceKind = iota
	KindRemoteTransformed
	KindRemote
	KindInline
)

// Reference is a client-supplied image reference, classified once at the
// request boundary so the resolution branch is explicit rather than
// re-derived from substring checks at every call site.
type Reference struct {
	Kind     ReferenceKind
	Raw      string
	PublicID string
}

// Classify inspects a raw image reference and tags it. Checks run in
// priority order: an asset already carrying the target transformation wins
// over a plain remote asset, which wins over inline-encoded bytes.
func Classify(raw, publicID string) Reference {
	switch {
	case strings.Contains(raw, Host) && strings.Contains(raw, eagerTransformation):
		return Reference{Kind: KindRemoteTransformed, Raw: raw}
	case strings.Contains(raw, Host):
		return Reference{Kind: KindRemote, Raw: raw, PublicID: publicID}
	case strings.HasPrefix(raw, "data:"):
		return Reference{Kind: KindInline, Raw: raw}
	default:
		return Reference{Kind: KindUnknown, Raw: raw}
	}
}
