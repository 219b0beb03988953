package detector

// runeRange is an inclusive range of unicode code points
type runeRange struct {
	Lo rune
	Hi rune
}

// scriptPattern describes the unicode ranges of a language's script
type scriptPattern struct {
	Language       string
	Ranges         []runeRange
	MinMatches     int
	BaseConfidence float64
}

// wordPattern describes common and distinctive words of a language.
// Distinctive matches are weighted twice as much as common ones.
type wordPattern struct {
	Language       string
	Common         map[string]struct{}
	Distinctive    map[string]struct{}
	BaseConfidence float64
}

func words(list ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
	return set
}

// scriptPatterns cover the scripts that are nearly unambiguous on their own.
// Cyrillic is shared, so "ru" carries a lower base confidence and "uk" matches
// only on letters absent from Russian.
var scriptPatterns = []scriptPattern{
	{Language: "zh", Ranges: []runeRange{{0x4E00, 0x9FFF}, {0x3400, 0x4DBF}}, MinMatches: 2, BaseConfidence: 0.9},
	{Language: "ja", Ranges: []runeRange{{0x3040, 0x309F}, {0x30A0, 0x30FF}}, MinMatches: 2, BaseConfidence: 0.95},
	{Language: "ko", Ranges: []runeRange{{0xAC00, 0xD7AF}, {0x1100, 0x11FF}}, MinMatches: 2, BaseConfidence: 0.95},
	{Language: "ar", Ranges: []runeRange{{0x0600, 0x06FF}, {0x0750, 0x077F}}, MinMatches: 3, BaseConfidence: 0.85},
	{Language: "he", Ranges: []runeRange{{0x0590, 0x05FF}}, MinMatches: 3, BaseConfidence: 0.9},
	{Language: "ru", Ranges: []runeRange{{0x0400, 0x04FF}}, MinMatches: 3, BaseConfidence: 0.7},
	{Language: "uk", Ranges: []runeRange{{0x0404, 0x0404}, {0x0406, 0x0407}, {0x0454, 0x0454}, {0x0456, 0x0457}, {0x0490, 0x0491}}, MinMatches: 2, BaseConfidence: 0.9},
	{Language: "th", Ranges: []runeRange{{0x0E00, 0x0E7F}}, MinMatches: 3, BaseConfidence: 0.95},
	{Language: "hi", Ranges: []runeRange{{0x0900, 0x097F}}, MinMatches: 3, BaseConfidence: 0.95},
	{Language: "el", Ranges: []runeRange{{0x0370, 0x03FF}}, MinMatches: 3, BaseConfidence: 0.95},
	{Language: "bn", Ranges: []runeRange{{0x0980, 0x09FF}}, MinMatches: 3, BaseConfidence: 0.95},
}

var wordPatterns = []wordPattern{
	{
		Language: "en",
		Common: words("the", "and", "is", "in", "to", "of", "a", "that", "it", "for",
			"on", "with", "as", "was", "at", "by", "this", "have", "from", "or",
			"be", "are", "an", "not", "but", "what", "all", "were", "when", "we"),
		Distinctive:    words("through", "although", "because", "which", "would", "could", "should", "these", "those"),
		BaseConfidence: 0.8,
	},
	{
		Language: "es",
		Common: words("el", "la", "de", "que", "y", "en", "un", "una", "es", "se",
			"no", "te", "lo", "le", "da", "su", "por", "son", "con", "para",
			"mi", "está", "como", "pero", "más"),
		Distinctive:    words("también", "además", "aunque", "entonces", "desde", "hasta", "muy"),
		BaseConfidence: 0.8,
	},
	{
		Language: "fr",
		Common: words("le", "la", "de", "et", "les", "des", "est", "un", "une", "du",
			"en", "que", "qui", "dans", "pour", "ce", "il", "au", "sur", "avec",
			"ne", "se", "pas", "plus", "par", "son"),
		Distinctive:    words("être", "c'est", "toujours", "aujourd'hui", "même", "très", "aussi"),
		BaseConfidence: 0.8,
	},
	{
		Language: "de",
		Common: words("der", "die", "das", "und", "ist", "ich", "nicht", "sie", "es", "ein",
			"eine", "zu", "den", "mit", "auf", "für", "von", "im", "dem", "sich",
			"auch", "ja", "wie", "war", "nur"),
		Distinctive:    words("aber", "oder", "wenn", "durch", "können", "müssen", "schon", "noch"),
		BaseConfidence: 0.8,
	},
	{
		Language: "it",
		Common: words("il", "la", "di", "che", "e", "è", "un", "una", "per", "in",
			"non", "sono", "con", "mi", "si", "lo", "ma", "le", "se", "ci",
			"questo", "come", "più", "del"),
		Distinctive:    words("anche", "perché", "quindi", "essere", "della", "sempre"),
		BaseConfidence: 0.8,
	},
	{
		Language: "pt",
		Common: words("o", "a", "de", "que", "e", "do", "da", "em", "um", "para",
			"é", "com", "não", "uma", "os", "no", "se", "na", "por", "mais",
			"as", "dos", "como", "mas"),
		Distinctive:    words("também", "porque", "então", "você", "muito", "já"),
		BaseConfidence: 0.8,
	},
	{
		Language: "nl",
		Common: words("de", "het", "een", "en", "van", "is", "dat", "op", "te", "zijn",
			"voor", "met", "als", "maar", "om", "aan", "er", "niet", "ook", "bij"),
		Distinctive:    words("omdat", "tussen", "gewoon", "heeft", "wordt"),
		BaseConfidence: 0.8,
	},
	{
		Language: "pl",
		Common: words("i", "w", "nie", "na", "to", "się", "z", "co", "jest", "do",
			"tak", "jak", "o", "ale", "mnie", "po", "za", "tego", "już", "czy"),
		Distinctive:    words("jestem", "właśnie", "dlaczego", "można", "bardzo", "które"),
		BaseConfidence: 0.8,
	},
	{
		Language: "sv",
		Common: words("och", "att", "det", "som", "en", "på", "är", "av", "för", "med",
			"den", "till", "inte", "om", "ett", "han", "var", "jag", "har", "vi"),
		Distinctive:    words("också", "mycket", "eftersom", "själv", "några"),
		BaseConfidence: 0.8,
	},
	{
		Language: "fi",
		Common: words("ja", "on", "ei", "se", "että", "en", "ole", "hän", "mutta", "oli",
			"kun", "niin", "mitä", "tämä", "jos", "kuin", "myös", "hei"),
		Distinctive:    words("kuitenkin", "esimerkiksi", "kanssa", "jälkeen", "paljon"),
		BaseConfidence: 0.8,
	},
	{
		Language: "tr",
		Common: words("bir", "bu", "ve", "için", "ne", "mi", "ben", "de", "çok", "daha",
			"ama", "gibi", "o", "var", "kadar", "sen", "bana", "beni"),
		Distinctive:    words("değil", "şey", "çünkü", "nasıl", "şimdi"),
		BaseConfidence: 0.8,
	},
	{
		Language: "ro",
		Common: words("și", "de", "la", "cu", "un", "o", "este", "pe", "în", "ce",
			"nu", "se", "mai", "din", "care", "să", "am", "dar"),
		Distinctive:    words("pentru", "foarte", "acest", "după", "către"),
		BaseConfidence: 0.8,
	},
	{
		Language: "da",
		Common: words("og", "i", "det", "at", "en", "den", "til", "er", "som", "på",
			"de", "med", "han", "af", "for", "ikke", "der", "har"),
		Distinctive:    words("hvordan", "også", "meget", "nogle", "være"),
		BaseConfidence: 0.8,
	},
	{
		Language: "cs",
		Common: words("je", "se", "na", "to", "v", "a", "že", "s", "z", "do",
			"o", "ale", "jak", "co", "už", "po", "tak", "když"),
		Distinctive:    words("protože", "například", "může", "ještě", "být"),
		BaseConfidence: 0.8,
	},
	{
		Language: "id",
		Common: words("yang", "dan", "di", "itu", "dengan", "untuk", "tidak", "ini", "dari", "dalam",
			"akan", "pada", "juga", "saya", "ke", "ada", "bisa"),
		Distinctive:    words("adalah", "tersebut", "karena", "sudah", "seperti"),
		BaseConfidence: 0.8,
	},
}

// expectedFrequencies holds relative a-z letter frequencies per language.
// Only languages with well separated Latin fingerprints are listed.
var expectedFrequencies = map[string]map[rune]float64{
	"en": {
		'e': 0.127, 't': 0.091, 'a': 0.082, 'o': 0.075, 'i': 0.070, 'n': 0.067,
		's': 0.063, 'h': 0.061, 'r': 0.060, 'd': 0.043, 'l': 0.040, 'c': 0.028,
		'u': 0.028, 'm': 0.024, 'w': 0.024, 'f': 0.022, 'g': 0.020, 'y': 0.020,
		'p': 0.019, 'b': 0.015,
	},
	"es": {
		'e': 0.137, 'a': 0.125, 'o': 0.087, 's': 0.080, 'r': 0.069, 'n': 0.067,
		'i': 0.063, 'd': 0.059, 'l': 0.050, 'c': 0.047, 't': 0.046, 'u': 0.039,
		'm': 0.032, 'p': 0.025, 'b': 0.014, 'g': 0.010, 'v': 0.009, 'q': 0.009,
	},
	"fr": {
		'e': 0.147, 's': 0.079, 'a': 0.076, 'i': 0.075, 't': 0.072, 'n': 0.071,
		'r': 0.066, 'u': 0.063, 'o': 0.058, 'l': 0.055, 'd': 0.037, 'c': 0.033,
		'm': 0.030, 'p': 0.025, 'v': 0.016, 'q': 0.014, 'f': 0.011, 'b': 0.009,
	},
	"de": {
		'e': 0.174, 'n': 0.098, 'i': 0.076, 's': 0.073, 'r': 0.070, 'a': 0.065,
		't': 0.062, 'd': 0.051, 'h': 0.048, 'u': 0.044, 'l': 0.034, 'c': 0.031,
		'g': 0.030, 'm': 0.025, 'o': 0.025, 'b': 0.019, 'w': 0.019, 'f': 0.017,
		'k': 0.012, 'z': 0.011,
	},
	"it": {
		'e': 0.118, 'a': 0.117, 'i': 0.113, 'o': 0.098, 'n': 0.069, 'l': 0.065,
		'r': 0.064, 't': 0.056, 's': 0.050, 'c': 0.045, 'd': 0.037, 'p': 0.031,
		'u': 0.030, 'm': 0.025, 'v': 0.021, 'g': 0.016,
	},
	"pt": {
		'a': 0.146, 'e': 0.126, 'o': 0.107, 's': 0.078, 'r': 0.065, 'i': 0.062,
		'n': 0.051, 'd': 0.050, 'm': 0.047, 'u': 0.046, 't': 0.043, 'c': 0.039,
		'l': 0.028, 'p': 0.025, 'v': 0.017, 'g': 0.013,
	},
}

// domainHints map country-code TLDs to a language. "multi" means the TLD
// carries no usable signal and the hint abstains.
var domainHints = map[string]string{
	"de": "de", "at": "de", "fr": "fr", "es": "es", "mx": "es", "ar": "es",
	"it": "it", "pt": "pt", "br": "pt", "nl": "nl", "pl": "pl", "se": "sv",
	"fi": "fi", "dk": "da", "no": "no", "cz": "cs", "ro": "ro", "tr": "tr",
	"ru": "ru", "ua": "uk", "gr": "el", "il": "he", "sa": "ar", "eg": "ar",
	"jp": "ja", "cn": "zh", "tw": "zh", "kr": "ko", "th": "th", "in": "hi",
	"id": "id", "vn": "vi", "us": "en", "uk": "en", "au": "en", "nz": "en",
	"ca": "multi", "ch": "multi", "be": "multi", "com": "multi", "org": "multi",
	"net": "multi", "io": "multi", "dev": "multi", "app": "multi",
}

// timezoneHints map an IANA timezone (exact name first, then its region
// prefix) to ordered candidate languages.
var timezoneHints = map[string][]string{
	"Europe/Berlin":        {"de"},
	"Europe/Vienna":        {"de"},
	"Europe/Zurich":        {"de", "fr", "it"},
	"Europe/Paris":         {"fr"},
	"Europe/Madrid":        {"es"},
	"Europe/Rome":          {"it"},
	"Europe/Lisbon":        {"pt"},
	"Europe/Amsterdam":     {"nl"},
	"Europe/Warsaw":        {"pl"},
	"Europe/Prague":        {"cs"},
	"Europe/Stockholm":     {"sv"},
	"Europe/Helsinki":      {"fi", "sv"},
	"Europe/Copenhagen":    {"da"},
	"Europe/Oslo":          {"no"},
	"Europe/Bucharest":     {"ro"},
	"Europe/Athens":        {"el"},
	"Europe/Moscow":        {"ru"},
	"Europe/Kyiv":          {"uk"},
	"Europe/Istanbul":      {"tr"},
	"Europe/London":        {"en"},
	"Asia/Tokyo":           {"ja"},
	"Asia/Shanghai":        {"zh"},
	"Asia/Hong_Kong":       {"zh", "en"},
	"Asia/Taipei":          {"zh"},
	"Asia/Seoul":           {"ko"},
	"Asia/Bangkok":         {"th"},
	"Asia/Kolkata":         {"hi", "en"},
	"Asia/Jakarta":         {"id"},
	"Asia/Riyadh":          {"ar"},
	"Asia/Dubai":           {"ar", "en"},
	"Asia/Jerusalem":       {"he"},
	"America/Sao_Paulo":    {"pt"},
	"America/Mexico_City":  {"es"},
	"America/Buenos_Aires": {"es"},
	"Europe":               {"en", "de", "fr"},
	"Asia":                 {"zh", "ja", "ko"},
	"America":              {"en", "es", "pt"},
	"Africa":               {"ar", "fr", "en"},
	"Australia":            {"en"},
	"Pacific":              {"en"},
}

// knownLanguages is the whitelist used to validate caller-supplied hints
var knownLanguages = map[string]struct{}{
	"ar": {}, "bn": {}, "cs": {}, "da": {}, "de": {}, "el": {}, "en": {},
	"es": {}, "fi": {}, "fr": {}, "he": {}, "hi": {}, "id": {}, "it": {},
	"ja": {}, "ko": {}, "nl": {}, "no": {}, "pl": {}, "pt": {}, "ro": {},
	"ru": {}, "sv": {}, "th": {}, "tr": {}, "uk": {}, "vi": {}, "zh": {},
}
