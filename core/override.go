package core

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/exp/slices"
)

// overrideEntry is the decoded shape of one element of a standard model's
// override list. Fields stay interface-typed so presence and type can be
// reported separately.
type overrideEntry struct {
	Predicate *struct {
		CustomModelData interface{} `mapstructure:"custom_model_data"`
	} `mapstructure:"predicate"`
	Model interface{} `mapstructure:"model"`
}

type overridePair struct {
	value int64
	raw   map[string]interface{}
}

// CheckStandard validates a standard model document: the override list must
// exist, every entry must carry an integral predicate.custom_model_data and
// a string model reference, consecutive entries must not repeat a value, and
// the list should ascend. An accepted reordering is written to disk
// immediately; model name normalization only mutates the document in memory.
// The returned slice holds the model reference of every entry, post-fix.
func CheckStandard(sess *Session, doc *ModelDocument) ([]string, error) {
	overridesVal, present := doc.raw["overrides"]
	if !present {
		return nil, NoQuickFixf("`overrides` key not found in %s", ResolvePath(doc.filePath))
	}
	overrides, ok := overridesVal.([]interface{})
	if !ok {
		return nil, NoQuickFixf("`overrides` value is not an array in %s", ResolvePath(doc.filePath))
	}

	pairs := make([]overridePair, len(overrides))
	for i, rawEntry := range overrides {
		var entry overrideEntry
		if err := mapstructure.Decode(rawEntry, &entry); err != nil {
			return nil, NoQuickFixf("override %d in %s is malformed: %v", i, ResolvePath(doc.filePath), err)
		}
		if entry.Predicate == nil || entry.Predicate.CustomModelData == nil {
			return nil, NoQuickFixf("`predicate.custom_model_data` not found in override %d of %s", i, ResolvePath(doc.filePath))
		}
		num, isNumber := entry.Predicate.CustomModelData.(json.Number)
		var value int64
		var err error
		if isNumber {
			value, err = num.Int64()
		}
		if !isNumber || err != nil {
			return nil, NoQuickFixf("`custom_model_data` of override %d in %s is not a whole number", i, ResolvePath(doc.filePath))
		}
		if entry.Model == nil {
			return nil, NoQuickFixf("`model` not found in override %d of %s", i, ResolvePath(doc.filePath))
		}
		if _, isString := entry.Model.(string); !isString {
			return nil, NoQuickFixf("`model` of override %d in %s is not a string", i, ResolvePath(doc.filePath))
		}
		pairs[i] = overridePair{value: value, raw: rawEntry.(map[string]interface{})}
	}

	// Only consecutive repeats count as duplicates; a value recurring later
	// in the list is caught by ordering instead.
	for i := 1; i < len(pairs); i++ {
		if pairs[i].value == pairs[i-1].value {
			return nil, NoQuickFixf("duplicate custom_model_data (%d) in %s", pairs[i].value, ResolvePath(doc.filePath))
		}
	}

	values := make([]int64, len(pairs))
	for i, p := range pairs {
		values[i] = p.value
	}
	if !slices.IsSorted(values) {
		if sess.Confirm(fmt.Sprintf("custom_model_data values in %s are not in ascending order, the overrides can be rearranged", ResolvePath(doc.filePath))) {
			slices.SortStableFunc(pairs, func(a, b overridePair) int {
				switch {
				case a.value < b.value:
					return -1
				case a.value > b.value:
					return 1
				}
				return 0
			})
			resorted := make([]interface{}, len(pairs))
			for i, p := range pairs {
				resorted[i] = p.raw
			}
			doc.raw["overrides"] = resorted
			if err := sess.SaveDoc(doc); err != nil {
				return nil, err
			}
		}
	}

	refs := make([]string, 0, len(pairs))
	for _, p := range pairs {
		model := p.raw["model"].(string)
		if fixed, changed := sess.FixName(model); changed {
			p.raw["model"] = fixed
			model = fixed
		}
		refs = append(refs, model)
	}
	return refs, nil
}
