package language

// WorkingCode is the single internal language the pipeline retrieves and
// generates in. Non-English sessions are bracketed by a translate-in /
// translate-out round trip around this code.
const WorkingCode = "en-IN"

// Profile maps a human-readable language selector to its Sarvam language
// code and the default Bulbul speaker used for synthesis.
type Profile struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Speaker string `json:"speaker"`
}

// Fixed process-wide table. Read-only at runtime.
var profiles = []Profile{
	{Name: "English", Code: "en-IN", Speaker: "shubh"},
	{Name: "Hindi", Code: "hi-IN", Speaker: "anushka"},
	{Name: "Tamil", Code: "ta-IN", Speaker: "abhilasha"},
	{Name: "Telugu", Code: "te-IN", Speaker: "anushka"},
	{Name: "Kannada", Code: "kn-IN", Speaker: "anushka"},
	{Name: "Malayalam", Code: "ml-IN", Speaker: "anushka"},
	{Name: "Bengali", Code: "bn-IN", Speaker: "anushka"},
	{Name: "Marathi", Code: "mr-IN", Speaker: "anushka"},
	{Name: "Gujarati", Code: "gu-IN", Speaker: "anushka"},
	{Name: "Punjabi", Code: "pa-IN", Speaker: "anushka"},
}

var byName = func() map[string]Profile {
	m := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		m[p.Name] = p
	}
	return m
}()

// Default returns the English profile, the pipeline's working language.
func Default() Profile {
	return profiles[0]
}

// Resolve maps a display name to its profile. It is total: unknown names
// resolve to the default (English) profile instead of failing, so a caller
// sending a malformed selector still gets a usable session.
func Resolve(name string) Profile {
	if p, ok := byName[name]; ok {
		return p
	}
	return Default()
}

// All returns the supported profiles in stable display order.
func All() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}
