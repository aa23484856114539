package testplan

// ActorDataDocument is the exact `{actors: [{actor1: ...}, {actor2:
// ...}]}` shape the source's config_data_handler.populate_user_data
// reads, preserved index-addressed rather than key-addressed: the
// first list entry must carry "actor1", the second "actor2". This is
// an intentional faithfulness to the original rather than a "fix" —
// see DESIGN.md.
type ActorDataDocument struct {
	Actors []map[string]ActorRecord `json:"actors"`
}

// ActorRecord is one actor's recorded path/body/query identifiers and
// the credentials used to authenticate as them.
type ActorRecord struct {
	PathParams  map[string]interface{} `json:"path_params"`
	BodyParams  map[string]interface{} `json:"body_params"`
	QueryParams map[string]interface{} `json:"query_params"`
	Headers     map[string]string      `json:"headers"`
}

// ParseActorData extracts actor1 and actor2 from the documented
// shape. actors[0] must carry key "actor1" and actors[1] must carry
// key "actor2" — any other arrangement is a malformed document, per
// the source's own index-addressed access.
func ParseActorData(doc ActorDataDocument) (actor1, actor2 UserData, ok bool) {
	if len(doc.Actors) < 2 {
		return UserData{}, UserData{}, false
	}
	a1, ok1 := doc.Actors[0]["actor1"]
	a2, ok2 := doc.Actors[1]["actor2"]
	if !ok1 || !ok2 {
		return UserData{}, UserData{}, false
	}
	return userDataFromRecord(a1), userDataFromRecord(a2), true
}

func userDataFromRecord(r ActorRecord) UserData {
	return UserData{
		PathParams:  r.PathParams,
		BodyParams:  r.BodyParams,
		QueryParams: r.QueryParams,
		Options:     ExecutionOptions{Headers: r.Headers},
	}
}
