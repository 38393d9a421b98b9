package variant

import (
	"github.com/anisan-cli/dvs/log"
	"github.com/anisan-cli/dvs/source"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// FilterByRequiredTypes keeps the variants that provide at least one source of
// every required media type. A nil or empty requirement returns set unchanged.
func FilterByRequiredTypes(set *Set, required []string) *Set {
	if len(required) == 0 {
		return set
	}

	filtered := set.clone()
	for _, k := range set.keys {
		group := set.groups[k]
		found := lo.CountBy(required, func(t string) bool {
			return lo.ContainsBy(group, func(d source.Descriptor) bool {
				return d.Type == t
			})
		})

		if found < len(required) {
			log.With(logrus.Fields{
				"variant":  string(k),
				"found":    found,
				"required": required,
			}).Info("variant dropped: missing required media types")
			filtered.remove(k)
		}
	}

	return filtered
}

// Missing returns the required types variant k does not provide.
func Missing(set *Set, k source.Key, required []string) []string {
	group, _ := set.Get(k)
	types := lo.Map(group, func(d source.Descriptor, _ int) string { return d.Type })
	return lo.Uniq(lo.Without(required, types...))
}
