package instrument

import (
	"context"
	"log/slog"

	"github.com/wen911119/preact/pkg/vdom"
)

// Logging creates a hook that writes one record per built node at level.
func Logging(logger *slog.Logger, level slog.Level) vdom.Hook {
	return vdom.HookFunc(func(node *vdom.VNode) {
		ctx := context.Background()
		if !logger.Enabled(ctx, level) {
			return
		}
		attrs := []slog.Attr{
			slog.String("name", node.Name()),
			slog.String("kind", node.Kind().String()),
			slog.Int("children", node.Children.Len()),
		}
		if node.Key != nil {
			attrs = append(attrs, slog.Any("key", node.Key))
		}
		logger.LogAttrs(ctx, level, "vnode created", attrs...)
	})
}
