package generate

import (
	"encoding/json"
	"strings"
)

// sourceMapV3 is the JSON shape of the Source Map Revision 3 spec, the
// only part of this façade with no third-party analogue anywhere in the
// pack (see DESIGN.md) — stdlib encoding/json is the correct tool here
// regardless of what else the corpus imports.
type sourceMapV3 struct {
	Version        int      `json:"version"`
	File           string   `json:"file,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

func buildSourceMap(opts Options, mappings []mapping) string {
	m := sourceMapV3{
		Version: 3,
		File:    opts.SourceFile,
		Sources: []string{opts.SourceFile},
		Names:   []string{},
	}
	if opts.SourceContent != "" {
		m.SourcesContent = []string{opts.SourceContent}
	}
	m.Mappings = encodeMappings(mappings)
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

// encodeMappings produces the "mappings" field: one semicolon-separated
// group per generated line, each group a comma-separated list of
// base64-VLQ-encoded [genColumn, sourceIndex, srcLine, srcColumn] deltas
// relative to the previous segment, per the source-map-v3 spec.
func encodeMappings(mappings []mapping) string {
	if len(mappings) == 0 {
		return ""
	}
	var sb strings.Builder
	prevGenLine := 0
	prevGenCol := 0
	prevSrcLine := 0
	prevSrcCol := 0
	firstInLine := true
	for _, m := range mappings {
		for m.genLine > prevGenLine {
			sb.WriteByte(';')
			prevGenLine++
			prevGenCol = 0
			firstInLine = true
		}
		if !firstInLine {
			sb.WriteByte(',')
		}
		firstInLine = false
		writeVLQ(&sb, m.genColumn-prevGenCol)
		writeVLQ(&sb, 0) // single source, index delta always 0
		writeVLQ(&sb, m.srcLine-prevSrcLine)
		writeVLQ(&sb, m.srcColumn-prevSrcCol)
		prevGenCol = m.genColumn
		prevSrcLine = m.srcLine
		prevSrcCol = m.srcColumn
	}
	return sb.String()
}

const vlqAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// writeVLQ base64-VLQ encodes value: the sign goes into bit 0, the
// magnitude shifts left by one, and each output digit carries 5 value
// bits plus a continuation bit, per the source-map-v3 spec's encoding.
func writeVLQ(sb *strings.Builder, value int) {
	v := value << 1
	if value < 0 {
		v = (-value << 1) | 1
	}
	for {
		digit := v & 0x1f
		v >>= 5
		if v > 0 {
			digit |= 0x20
		}
		sb.WriteByte(vlqAlphabet[digit])
		if v == 0 {
			break
		}
	}
}
