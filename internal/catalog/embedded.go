package catalog

import (
	_ "embed"
	"encoding/json"

	"github.com/relicscope/platform/internal/errors"
	"github.com/relicscope/platform/pkg/pb"
)

//go:embed items.json
var embeddedItems []byte

// Embedded returns the bundled fallback catalog, used when the market API
// is unreachable at startup.
func Embedded() (*Catalog, error) {
	var items []Item
	if err := json.Unmarshal(embeddedItems, &items); err != nil {
		return nil, errors.Wrap(err, pb.ErrorCode_CACHE_CORRUPT, "decode embedded catalog")
	}
	return New(items), nil
}
