package extract

import (
	"regexp"
	"strings"

	"github.com/gemdocs/procurement-tracker/constants"
)

// Natural-key tokens printed in the document header. Contracts carry GEMC
// numbers; bids carry GEM/<year>/B/<seq> (sometimes without separators).
var (
	reContractToken = regexp.MustCompile(`\bGEMC-\d{6,}`)
	reBidToken      = regexp.MustCompile(`\bGEM/\d{4}/B/\d+|\bGEM\d{4}B\d+`)
)

const detectWindow = 6000

// DetectDocType resolves the document family from content, falling back to
// the filename. Content wins when the two disagree: filenames get renamed
// by download managers, the printed header does not. Contracts are checked
// first because they cite the originating bid number.
func DetectDocType(text, filename string) constants.DocType {
	head := text
	if len(head) > detectWindow {
		head = head[:detectWindow]
	}

	switch {
	case reContractToken.MatchString(head):
		return constants.DocTypeContract
	case reBidToken.MatchString(head):
		return constants.DocTypeBid
	}

	lower := strings.ToLower(head)
	switch {
	case strings.Contains(lower, "contract no"):
		return constants.DocTypeContract
	case strings.Contains(lower, "bid number"), strings.Contains(lower, "bid document"):
		return constants.DocTypeBid
	}

	return constants.DetectDocTypeFromName(filename)
}
