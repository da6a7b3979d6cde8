// Package htmlblock manages marker-delimited chart blocks inside HTML
// reports. Blocks are replaced byte-for-byte in place, so repeated runs
// never dirty the surrounding report content.
package htmlblock

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	startMarker = "<!-- PLOT_BLOCK_START:%s -->"
	endMarker   = "<!-- PLOT_BLOCK_END:%s -->"
)

var (
	anyBlockRe  = regexp.MustCompile(`(?s)<!-- PLOT_BLOCK_START:.*?-->\s*.*?<!-- PLOT_BLOCK_END:.*? -->\n?`)
	lastTableRe = regexp.MustCompile(`(?i)</table>`)
)

// StartMarker returns the opening comment for a block id.
func StartMarker(id string) string {
	return fmt.Sprintf(startMarker, id)
}

// EndMarker returns the closing comment for a block id.
func EndMarker(id string) string {
	return fmt.Sprintf(endMarker, id)
}

// Block assembles the full marker-delimited region for an id.
func Block(id, content string) string {
	return StartMarker(id) + "\n" + content + "\n" + EndMarker(id)
}

// ImageBlock is the canonical injected content: a div wrapping one image.
// Upsert adds the markers; the content itself must never carry them.
func ImageBlock(src, alt string) string {
	return fmt.Sprintf(`<div class="plot-block"><img src=%q alt=%q /></div>`, src, alt)
}

// Upsert inserts or updates the block for an id. An existing marker pair is
// replaced inclusively in place; stray duplicates for the same id are
// collapsed. Absent markers insert the block immediately after the last
// closing table tag. Documents without a table are returned unchanged with
// changed=false.
func Upsert(doc []byte, id, content string) (out []byte, changed bool) {
	block := Block(id, content)
	re := blockPattern(id)

	if locs := re.FindAllIndex(doc, -1); len(locs) > 0 {
		var b strings.Builder
		prev := 0
		for i, loc := range locs {
			b.Write(doc[prev:loc[0]])
			if i == 0 {
				b.WriteString(block)
			}
			prev = loc[1]
		}
		b.Write(doc[prev:])
		return []byte(b.String()), true
	}

	tables := lastTableRe.FindAllIndex(doc, -1)
	if len(tables) == 0 {
		return doc, false
	}
	at := tables[len(tables)-1][1]

	var b strings.Builder
	b.Write(doc[:at])
	b.WriteString("\n")
	b.WriteString(block)
	b.Write(doc[at:])
	return []byte(b.String()), true
}

func blockPattern(id string) *regexp.Regexp {
	q := regexp.QuoteMeta(id)
	return regexp.MustCompile(`(?s)<!-- PLOT_BLOCK_START:` + q + ` -->.*?<!-- PLOT_BLOCK_END:` + q + ` -->`)
}

// StripBlocks removes every marker-delimited block, whatever its id.
func StripBlocks(doc []byte) []byte {
	return anyBlockRe.ReplaceAll(doc, nil)
}

// StripLegacyImages removes hand-injected <div>...<img ...file...>...</div>
// containers from the pre-marker era, matched by image filename.
func StripLegacyImages(doc []byte, filenames []string) []byte {
	for _, f := range filenames {
		re := regexp.MustCompile(`(?si)<div>.*?<img[^>]*` + regexp.QuoteMeta(f) + `[^>]*>.*?</div>`)
		doc = re.ReplaceAll(doc, nil)
	}
	return doc
}

// CountBlocks reports how many marker pairs exist for an id.
func CountBlocks(doc []byte, id string) int {
	return len(blockPattern(id).FindAllIndex(doc, -1))
}
