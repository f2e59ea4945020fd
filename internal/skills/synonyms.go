package skills

// synonymGroups maps a canonical skill to the set of normalized spellings
// accepted as the same skill. Groups are fixed configuration: ranking output
// parity depends on these exact entries.
var synonymGroups = map[string][]string{
	"javascript": {"javascript", "js"},
	"typescript": {"typescript", "ts"},
	"cpp":        {"cpp", "c++", "cplusplus"},
	"csharp":     {"csharp", "c#"},
	"c":          {"c", "clang", "cprogramming"},
	"r":          {"r", "rprogramming", "rlanguage"},
	"go":         {"go", "golang"},
	"nodejs":     {"nodejs", "node"},
	"react":      {"react", "reactjs"},
	"next":       {"next", "nextjs"},
	"express":    {"express", "expressjs"},
	"mongodb":    {"mongodb", "mongo"},
	"aws":        {"aws", "amazonwebservices"},
	"azure":      {"azure", "microsoftazure"},
	"gcp":        {"gcp", "googlecloudplatform", "googlecloud"},
	"git":        {"git", "github", "gitlab"},
}

// synonymIndex maps each normalized spelling to its canonical group key.
var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]string {
	index := make(map[string]string)
	for canonical, variants := range synonymGroups {
		for _, v := range variants {
			index[v] = canonical
		}
	}
	return index
}

// sameSynonymGroup reports whether two normalized skill names belong to the
// same synonym group.
func sameSynonymGroup(a, b string) bool {
	groupA, okA := synonymIndex[a]
	groupB, okB := synonymIndex[b]
	return okA && okB && groupA == groupB
}
