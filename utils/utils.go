package utils

import (
	"github.com/graph-gophers/graphql-go"
)

// ContainsString returns true iff the provided string slice hay contains
// string needle.
func ContainsString(hay []string, needle string) bool {
	for _, str := range hay {
		if str == needle {
			return true
		}
	}
	return false
}

// RemoveString returns hay with every occurrence of needle removed,
// preserving the order of the remaining elements. The input slice is not
// modified.
func RemoveString(hay []string, needle string) []string {
	res := make([]string, 0, len(hay))
	for _, str := range hay {
		if str != needle {
			res = append(res, str)
		}
	}
	return res
}

// StringSlicesContainSameElements returns true if the two slices hold the
// same elements regardless of order, counting duplicates.
func StringSlicesContainSameElements(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, s := range a {
		counts[s]++
	}
	for _, s := range b {
		counts[s]--
		if counts[s] < 0 {
			return false
		}
	}
	return true
}

// ParseGraphQLSchema parses the GraphQL schema against the given root
// resolver, panicking on an invalid schema. Schema validity is a
// compile-time property of the binary, hence panic instead of error.
func ParseGraphQLSchema(schemaString string, resolver interface{}) *graphql.Schema {
	return graphql.MustParseSchema(schemaString, resolver)
}
