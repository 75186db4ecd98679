// Query-parameter partitioning.
package locator

import "strings"

// variantKeys select among physically distinct options of one listing.
// Exact-match, checked before the tracking prefixes.
var variantKeys = map[string]bool{
	"th":   true,
	"psc":  true,
	"smid": true,
}

// trackingPrefixes mark analytics/referral parameters, safe to discard
// without changing the referenced content. Matched case-insensitively.
var trackingPrefixes = []string{
	"pd_rd_",
	"pf_rd_",
	"_encoding",
	"qid",
	"sr",
	"keywords",
	"crid",
	"sprefix",
	"dib",
	"tag",
	"linkcode",
	"linkid",
	"ref",
	"ref_",
}

// PartitionParams splits params into variant and tracking subsets.
// The two results are disjoint: the variant check runs first and a key
// classified as variant is never tested against the tracking prefixes.
// Keys matching neither rule are left out of both maps.
func PartitionParams(params map[string]string) (variant, tracking map[string]string) {
	variant = map[string]string{}
	tracking = map[string]string{}

	for key, value := range params {
		if variantKeys[key] {
			variant[key] = value
			continue
		}
		if isTrackingKey(key) {
			tracking[key] = value
		}
	}
	return variant, tracking
}

func isTrackingKey(key string) bool {
	lower := strings.ToLower(key)
	for _, prefix := range trackingPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
