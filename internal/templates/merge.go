package templates

// Merge applies overrides onto base and returns a new document. The merge is
// shallow: an override value replaces the base value at its key, except when
// both sides are mappings, which are merged one level deep (override keys
// win inside that level, deeper nesting is replaced wholesale). Keys present
// on only one side are preserved. Neither input is mutated.
func Merge(base, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, ov := range overrides {
		bm, baseIsMap := out[k].(map[string]any)
		om, overrideIsMap := ov.(map[string]any)
		if baseIsMap && overrideIsMap {
			merged := make(map[string]any, len(bm)+len(om))
			for k2, v2 := range bm {
				merged[k2] = v2
			}
			for k2, v2 := range om {
				merged[k2] = v2
			}
			out[k] = merged
			continue
		}
		out[k] = ov
	}
	return out
}
