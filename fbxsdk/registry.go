package fbxsdk

import (
	"strings"
)

type writerFormat struct {
	description string
	isFBX       bool
	versions    []string
}

// IORegistry advertises the file formats the writer side understands,
// mirroring the SDK's IO plugin registry surface.
type IORegistry struct {
	formats []writerFormat
}

var fbx7Versions = []string{"FBX201400", "FBX201300", "FBX201200", "FBX201100"}

func newIORegistry() *IORegistry {
	return &IORegistry{
		formats: []writerFormat{
			{"FBX binary (*.fbx)", true, fbx7Versions},
			{"FBX ascii (*.fbx)", true, fbx7Versions},
			{"FBX encrypted (*.fbx)", true, fbx7Versions},
			{"FBX 6.0 binary (*.fbx)", true, []string{"FBX201000"}},
			{"FBX 6.0 ascii (*.fbx)", true, []string{"FBX201000"}},
			{"AutoCAD DXF (*.dxf)", false, nil},
			{"Alias OBJ (*.obj)", false, nil},
		},
	}
}

func (r *IORegistry) WriterFormatCount() int { return len(r.formats) }

func (r *IORegistry) WriterIsFBX(formatIndex int) bool {
	if formatIndex < 0 || formatIndex >= len(r.formats) {
		return false
	}
	return r.formats[formatIndex].isFBX
}

func (r *IORegistry) WriterFormatDescription(formatIndex int) string {
	if formatIndex < 0 || formatIndex >= len(r.formats) {
		return ""
	}
	return r.formats[formatIndex].description
}

func (r *IORegistry) WritableVersions(formatIndex int) []string {
	if formatIndex < 0 || formatIndex >= len(r.formats) {
		return nil
	}
	return r.formats[formatIndex].versions
}

// Versions lists the selectable "NAME | VERSION" strings, one per
// writable FBX version. Ascii and encrypted formats are skipped since
// their version lists duplicate the binary one.
func Versions() []string {
	mgr := NewManager()
	defer mgr.Destroy()

	var out []string
	registry := mgr.IORegistry()
	for i := 0; i < registry.WriterFormatCount(); i++ {
		if !registry.WriterIsFBX(i) {
			continue
		}
		desc := registry.WriterFormatDescription(i)
		if strings.Contains(desc, "encrypted") || strings.Contains(desc, "ascii") {
			continue
		}
		binaryPos := strings.Index(desc, "binary")
		if binaryPos <= 0 {
			continue
		}
		name := desc[:binaryPos-1]
		for _, ver := range registry.WritableVersions(i) {
			out = append(out, name+" | "+ver)
		}
	}
	return out
}
