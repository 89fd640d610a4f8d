package engine

import (
	"github.com/lib/pq"
	"github.com/tunemesh/tunemesh/utils"
)

// An edge exists only when both documents agree: the owner's list holds the
// target id AND the target's list holds the owner id. Checking a single
// side would let a half-written edge from an earlier partial failure mask
// itself as either present or absent depending on which side is asked.
func edgePresent(ownerList []string, targetId string, targetList []string, ownerId string) bool {
	return utils.ContainsString(ownerList, targetId) && utils.ContainsString(targetList, ownerId)
}

// linkEdge appends each endpoint's id to the other's list. Callers must
// have verified the edge is absent first.
func linkEdge(ownerList *pq.StringArray, targetId string, targetList *pq.StringArray, ownerId string) {
	*ownerList = append(*ownerList, targetId)
	*targetList = append(*targetList, ownerId)
}

// unlinkEdge removes each endpoint's id from the other's list. Callers must
// have verified the edge is present first.
func unlinkEdge(ownerList *pq.StringArray, targetId string, targetList *pq.StringArray, ownerId string) {
	*ownerList = utils.RemoveString(*ownerList, targetId)
	*targetList = utils.RemoveString(*targetList, ownerId)
}
