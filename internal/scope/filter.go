package scope

import "go.mongodb.org/mongo-driver/v2/bson"

// matchNothing is the compiled form of an empty scope. _id exists on
// every document, so this predicate can never match. Absence of scope
// denies by default; it must never widen to match-everything.
var matchNothing = bson.M{"_id": bson.M{"$exists": false}}

// Filter compiles the resolution into a Mongo predicate: an $or of
// exact-equality triples, usable against any collection keyed by the
// same pc/constituency/ward fields.
func (r Resolution) Filter() bson.M {
	if len(r.Allowed) == 0 {
		return matchNothing
	}
	or := make(bson.A, 0, len(r.Allowed))
	for _, t := range r.Allowed {
		or = append(or, bson.M{
			"pc":           t.PC,
			"constituency": t.Constituency,
			"ward":         t.Ward,
		})
	}
	return bson.M{"$or": or}
}

// And intersects a caller-supplied filter with the compiled scope
// filter. The two stay in separate $and branches so a caller term
// named like a scope term can never override it.
func And(caller, scopeFilter bson.M) bson.M {
	return bson.M{"$and": bson.A{caller, scopeFilter}}
}
