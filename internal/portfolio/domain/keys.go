package domain

// Collection identifies one of the five portfolio collections.
type Collection string

const (
	CollectionProjects    Collection = "projects"
	CollectionSkills      Collection = "skills"
	CollectionExperiences Collection = "experiences"
	CollectionMessages    Collection = "messages"
	CollectionCategories  Collection = "categories"
)

// Collections lists every collection in a stable order.
var Collections = []Collection{
	CollectionProjects,
	CollectionSkills,
	CollectionExperiences,
	CollectionMessages,
	CollectionCategories,
}

// StorageKey is the backing store key holding the collection's mirror.
func (c Collection) StorageKey() string {
	return "portfolio_" + string(c)
}

func (c Collection) Valid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}
