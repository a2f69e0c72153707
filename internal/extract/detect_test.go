package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gemdocs/procurement-tracker/constants"
)

func TestDetectDocType(t *testing.T) {
	assert.Equal(t, constants.DocTypeContract,
		DetectDocType("Contract No : GEMC-511687790000002", "x.pdf"))
	assert.Equal(t, constants.DocTypeBid,
		DetectDocType("Bid Number: GEM/2025/B/6171152", "x.pdf"))

	// Contracts cite the originating bid number; they must still read as
	// contracts.
	both := "Contract No : GEMC-511687790000002\nBid Number : GEM/2025/B/6171152"
	assert.Equal(t, constants.DocTypeContract, DetectDocType(both, "x.pdf"))

	// Label fallback when no natural-key token survived extraction.
	assert.Equal(t, constants.DocTypeBid,
		DetectDocType("बोली दस्तावेज़/Bid Document", "x.pdf"))
}

func TestDetectDocTypeFilenameFallback(t *testing.T) {
	assert.Equal(t, constants.DocTypeContract,
		DetectDocType("unreadable", "GeM-Contract-123.pdf"))
	assert.Equal(t, constants.DocTypeBid,
		DetectDocType("unreadable", "GeM-Bidding-6171152.pdf"))
	assert.Equal(t, constants.DocTypeUnknown,
		DetectDocType("unreadable", "scan001.pdf"))
}

func TestDetectDocTypeContentBeatsFilename(t *testing.T) {
	assert.Equal(t, constants.DocTypeContract,
		DetectDocType(sampleContract, "GeM-Bidding-777.pdf"))
	assert.Equal(t, constants.DocTypeBid,
		DetectDocType(sampleBid, "GeM-Contract-777.pdf"))
}
