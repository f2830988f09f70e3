/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/suparena/filestore/errors"
	"github.com/suparena/filestore/model"
	"github.com/suparena/filestore/storagemodels"
)

// encodeDocument renders the registry snapshot. Integral floats keep a fraction
// (3.0, not 3) so they decode back as floats rather than integers.
func encodeDocument(entities map[string]*model.Entity) ([]byte, error) {
	doc := make(storagemodels.Document, len(entities))
	for key, ent := range entities {
		rec := make(storagemodels.Record, len(ent.Attributes)+4)
		for k, v := range ent.ToMap() {
			ev, err := encodableValue(v)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", key, k, err)
			}
			rec[k] = ev
		}
		doc[key] = rec
	}
	return json.Marshal(doc)
}

func encodableValue(v any) (any, error) {
	switch tv := v.(type) {
	case float64:
		return floatNumber(tv)
	case float32:
		return floatNumber(float64(tv))
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, item := range tv {
			ev, err := encodableValue(item)
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			ev, err := encodableValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	default:
		return v, nil
	}
}

func floatNumber(f float64) (json.Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("unsupported float value %v", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return json.Number(s), nil
}

// decodeDocument parses a mapping of composite key to flat record. Numbers are kept
// as json.Number so integers and floats stay distinguishable.
func decodeDocument(data []byte) (storagemodels.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc storagemodels.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.NewDeserializationError("", err)
	}
	if doc == nil {
		return nil, errors.NewDeserializationError("", fmt.Errorf("document is not an object"))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.NewDeserializationError("", fmt.Errorf("trailing data after document"))
	}
	return doc, nil
}
