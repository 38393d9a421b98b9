package variant

import (
	"sort"
	"strings"

	"github.com/anisan-cli/dvs/source"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Priorities splits a comma separated startup preference into keys.
func Priorities(list string) []source.Key {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	return lo.FilterMap(strings.Split(list, ","), func(part string, _ int) (source.Key, bool) {
		part = strings.TrimSpace(part)
		return source.Key(part), part != ""
	})
}

// ResolveDefault returns the first key of the priority list present in set.
func ResolveDefault(set *Set, list string) mo.Option[source.Key] {
	k, ok := lo.Find(Priorities(list), set.Has)
	if !ok {
		return mo.None[source.Key]()
	}
	return mo.Some(k)
}

// Suggest returns the variant keys closest to an unknown name, best match first.
func Suggest(set *Set, name string) []source.Key {
	targets := lo.Map(set.keys, func(k source.Key, _ int) string { return string(k) })
	ranks := fuzzy.RankFindNormalizedFold(name, targets)
	sort.Sort(ranks)
	return lo.Map(ranks, func(r fuzzy.Rank, _ int) source.Key { return source.Key(r.Target) })
}
