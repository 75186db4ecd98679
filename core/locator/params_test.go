package locator

import "testing"

func TestPartitionParams(t *testing.T) {
	params := map[string]string{
		"th":         "1",
		"psc":        "1",
		"smid":       "A2SELLER99",
		"pd_rd_w":    "abc",
		"pf_rd_p":    "def",
		"qid":        "1700000000",
		"keywords":   "espresso",
		"ref_":       "sr_1_3",
		"linkCode":   "ll1",
		"node":       "16225007011",
		"completely": "unknown",
	}

	variant, tracking := PartitionParams(params)

	for _, key := range []string{"th", "psc", "smid"} {
		if _, ok := variant[key]; !ok {
			t.Errorf("variant missing %q", key)
		}
	}
	for _, key := range []string{"pd_rd_w", "pf_rd_p", "qid", "keywords", "ref_", "linkCode"} {
		if _, ok := tracking[key]; !ok {
			t.Errorf("tracking missing %q", key)
		}
	}
	for _, key := range []string{"node", "completely"} {
		if _, ok := variant[key]; ok {
			t.Errorf("variant should not contain %q", key)
		}
		if _, ok := tracking[key]; ok {
			t.Errorf("tracking should not contain %q", key)
		}
	}
}

// Both result sets must be subsets of the input and disjoint from each
// other, for any input.
func TestPartitionParamsDisjoint(t *testing.T) {
	params := map[string]string{
		"th":    "1",
		"thing": "x", // not a variant key despite the prefix
		"tag":   "foo-20",
		"TAG2":  "bar", // tracking matches case-insensitively
		"other": "y",
		"smid":  "z",
		"ref":   "nav",
	}

	variant, tracking := PartitionParams(params)

	for key := range variant {
		if _, ok := params[key]; !ok {
			t.Errorf("variant key %q not in input", key)
		}
		if _, ok := tracking[key]; ok {
			t.Errorf("key %q in both variant and tracking", key)
		}
	}
	for key := range tracking {
		if _, ok := params[key]; !ok {
			t.Errorf("tracking key %q not in input", key)
		}
	}

	if _, ok := variant["thing"]; ok {
		t.Error("'thing' must not be a variant key (exact match only)")
	}
	if _, ok := tracking["TAG2"]; !ok {
		t.Error("'TAG2' should match tracking prefix 'tag' case-insensitively")
	}
}

func TestPartitionParamsEmpty(t *testing.T) {
	variant, tracking := PartitionParams(nil)
	if len(variant) != 0 || len(tracking) != 0 {
		t.Errorf("expected empty partitions, got %v / %v", variant, tracking)
	}
}
