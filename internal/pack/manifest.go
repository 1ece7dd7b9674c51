package pack

// ManifestFilename is the fixed name of the manifest entry inside a pack
// archive.
const ManifestFilename = "pack.json"

// Manifest is the structured metadata describing a sticker pack.
//
// Stickers lists asset filenames in processing order (insertion order ==
// input order). Invariant: Cover is always a member of Stickers.
type Manifest struct {
	Name     string   `json:"name"`
	Author   string   `json:"author"`
	Cover    string   `json:"cover"`
	Stickers []string `json:"stickers"`
}

// NewManifest builds a manifest over the given ordered filenames.
//
// Cover resolves to filenames[coverIndex] when the index is in range and
// to the first filename otherwise (negative, too large, or any index into
// an empty list).
func NewManifest(name, author string, filenames []string, coverIndex int) Manifest {
	cover := ""
	if len(filenames) > 0 {
		cover = filenames[0]
		if coverIndex >= 0 && coverIndex < len(filenames) {
			cover = filenames[coverIndex]
		}
	}
	return Manifest{
		Name:     name,
		Author:   author,
		Cover:    cover,
		Stickers: filenames,
	}
}
