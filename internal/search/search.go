// Package search is the optional elasticsearch surface of the catalog.
// Without a configured client the Indexer is a no-op and the search
// handler reports the feature as unavailable.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"

	"github.com/janatafootwear/storefront/internal/logging"
	"github.com/janatafootwear/storefront/internal/models"
)

const ProductIndex = "products"

func Search(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []models.Product, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description", "tags"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: elasticsearch error: %s", res.Status())
	}

	return decodeSearchResponse(res.Body)
}

func decodeSearchResponse(body io.Reader) (int64, []models.Product, error) {
	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(body).Decode(&r); err != nil {
		return 0, nil, err
	}

	prods := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		prods[i] = hit.Source
	}
	return r.Hits.Total.Value, prods, nil
}

// Indexer mirrors catalog writes into elasticsearch, best effort. A nil
// Indexer (or one with a nil client) drops every update.
type Indexer struct {
	ES    *elasticsearch.Client
	Index string
}

func NewIndexer(es *elasticsearch.Client) *Indexer {
	if es == nil {
		return nil
	}
	return &Indexer{ES: es, Index: ProductIndex}
}

func (ix *Indexer) IndexProduct(ctx context.Context, p *models.Product) {
	if ix == nil || ix.ES == nil {
		return
	}
	l := logging.FromContext(ctx)

	data, err := json.Marshal(p)
	if err != nil {
		l.Warn("search_index_error", "product_id", p.ID, "error", err)
		return
	}

	res, err := ix.ES.Index(
		ix.Index,
		bytes.NewReader(data),
		ix.ES.Index.WithContext(ctx),
		ix.ES.Index.WithDocumentID(p.ID.String()),
	)
	if err != nil {
		l.Warn("search_index_error", "product_id", p.ID, "error", err)
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		l.Warn("search_index_error", "product_id", p.ID, "status", res.Status())
	}
}

func (ix *Indexer) DeleteProduct(ctx context.Context, id uuid.UUID) {
	if ix == nil || ix.ES == nil {
		return
	}
	l := logging.FromContext(ctx)

	res, err := ix.ES.Delete(ix.Index, id.String(), ix.ES.Delete.WithContext(ctx))
	if err != nil {
		l.Warn("search_delete_error", "product_id", id, "error", err)
		return
	}
	defer res.Body.Close()
	if res.IsError() && !strings.Contains(res.Status(), "404") {
		l.Warn("search_delete_error", "product_id", id, "status", res.Status())
	}
}
