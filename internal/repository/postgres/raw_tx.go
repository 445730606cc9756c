package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/pkg/safe"
)

// InsertRawTx archives a decoded confidential transaction. rec.Body must be JSON.
// NUL escapes are replaced with U+FFFD since jsonb cannot hold them.
func (r *Repository) InsertRawTx(ctx context.Context, rec model.RawTx) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("insert_raw_tx", err, started)
	}()

	block, err := safe.Int64(rec.Block)
	if err != nil {
		return fmt.Errorf("raw tx block: %w", err)
	}

	insert := r.builder.
		Insert("raw_qq_tx").
		Columns("hash", "block", "tx").
		Values(rec.Hash, block, jsonbSafe(rec.Body)).
		Suffix("ON CONFLICT (hash, block) DO NOTHING")
	if err = r.exec(ctx, insert); err != nil {
		return fmt.Errorf("insert raw tx: %w", err)
	}
	return nil
}

const (
	nulEscape         = `\u0000`
	replacementEscape = `\ufffd`
)

// jsonbSafe rewrites \u0000 escapes. Escapes are walked pairwise, so an
// escaped backslash followed by "u0000" is left as is.
func jsonbSafe(body string) string {
	if !strings.Contains(body, nulEscape) {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		if body[i] != '\\' || i+1 >= len(body) {
			b.WriteByte(body[i])
			i++
			continue
		}
		if strings.HasPrefix(body[i:], nulEscape) {
			b.WriteString(replacementEscape)
			i += len(nulEscape)
			continue
		}
		b.WriteString(body[i : i+2])
		i += 2
	}
	return b.String()
}
