package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// mapView copies matching fields of a query view into a response type.
func mapView[T any](src any) *T {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("response mapping failed", "error", err)
	}
	return &dst
}
