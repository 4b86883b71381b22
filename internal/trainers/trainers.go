// internal/trainers/trainers.go
// Static personal trainer directory. This data is the single source of
// truth for trainer presentation on the public site.
package trainers

// Review is a short member testimonial about a trainer.
type Review struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Trainer is one personal trainer profile.
type Trainer struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ShortName   string   `json:"shortName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Quote       string   `json:"quote"`
	Bio         string   `json:"bio"`
	ImageKey    string   `json:"imageKey"`
	ImageURL    string   `json:"imageUrl"`
	Instagram   string   `json:"instagram,omitempty"`
	Specialties []string `json:"specialties"`
	Reviews     []Review `json:"reviews"`
}

// ImageURLBuilder turns a stored image key into a sized image URL.
// *zoezi.Client satisfies this.
type ImageURLBuilder interface {
	ImageURL(key string, width, height int) string
}

const portraitSize = 400

// Directory resolves trainer profiles with image URLs filled in.
type Directory struct {
	images ImageURLBuilder
}

func NewDirectory(images ImageURLBuilder) *Directory {
	return &Directory{images: images}
}

// All returns every trainer profile.
func (d *Directory) All() []Trainer {
	out := make([]Trainer, len(roster))
	for i, trainer := range roster {
		out[i] = d.resolve(trainer)
	}
	return out
}

// ByID returns one trainer profile, or false when the id is unknown.
func (d *Directory) ByID(id string) (Trainer, bool) {
	for _, trainer := range roster {
		if trainer.ID == id {
			return d.resolve(trainer), true
		}
	}
	return Trainer{}, false
}

func (d *Directory) resolve(trainer Trainer) Trainer {
	trainer.ImageURL = d.images.ImageURL(trainer.ImageKey, portraitSize, portraitSize)
	specialties := make([]string, len(trainer.Specialties))
	copy(specialties, trainer.Specialties)
	trainer.Specialties = specialties
	reviews := make([]Review, len(trainer.Reviews))
	copy(reviews, trainer.Reviews)
	trainer.Reviews = reviews
	return trainer
}

var roster = []Trainer{
	{
		ID:        "filip",
		Name:      "Filip Enhörning",
		ShortName: "PT Filip",
		Email:     "filip@coregymclub.se",
		Phone:     "070-123 45 67",
		Quote:     "Jag hjälper dig att utveckla hållbara träningsrutiner. Jag vill att du ska känna dig trygg, stark och självgående efter vår tid tillsammans.",
		Bio:       "Filip är en erfaren personlig tränare med passion för att hjälpa människor nå sina mål. Med sin bakgrund inom idrottsfysiologi och flerårig erfarenhet skapar han personliga träningsprogram som fungerar långsiktigt.",
		ImageKey:  "6e335ae4-4129-471e-b98a-926b2864ff3f",
		Instagram: "@filipenhorning",
		Specialties: []string{
			"Styrketräning", "Funktionell träning", "Kostrådgivning", "Rehabilitering",
		},
		Reviews: []Review{
			{Text: "Filip har verkligen förändrat min syn på träning. Hans kunskap och positiva energi gör varje pass till något jag ser fram emot!", Author: "Emma K."},
			{Text: "Tack vare Filip har jag äntligen hittat en hållbar träningsrutin som passar mitt liv. Rekommenderar starkt!", Author: "Johan S."},
		},
	},
	{
		ID:        "denise",
		Name:      "Denise Kimström",
		ShortName: "PT Denise",
		Email:     "denise@coregymclub.se",
		Phone:     "070-234 56 78",
		Quote:     "Jag brinner för att motivera och inspirera dig hela vägen. Tillsammans skapar vi en rolig och utmanande träningsupplevelse. Med glädje och energi ger jag dig verktygen för att nå framgång både i och utanför gymmet.",
		Bio:       "Denise kombinerar sitt brinnande engagemang med gedigen kunskap för att skapa en träningsupplevelse som är både rolig och effektiv. Hon tror på att glädje och framgång går hand i hand.",
		ImageKey:  "2c0876db-893d-4cdb-8c22-8d97461e005e",
		Instagram: "@denisekimstrom",
		Specialties: []string{
			"HIIT", "TRX-träning", "Gruppträning", "Motivation & Coaching",
		},
		Reviews: []Review{
			{Text: "Denise energi är smittande! Hon får mig att pusha mig själv hårdare än jag trodde var möjligt.", Author: "Sara M."},
		},
	},
	{
		ID:        "michan",
		Name:      "Michaela Beutler Fristål",
		ShortName: "PT Michan",
		Email:     "michan@coregymclub.se",
		Phone:     "070-345 67 89",
		Quote:     "För mig finns det inget som heter \"jag kan inte\". Tillsammans utforskar vi din potential och ser till att träningen blir en både rolig och utmanande resa. Jag finns här för att fira dina framsteg och stötta dig när det blir tufft.",
		Bio:       "Michan är övertygad om att alla kan nå sina mål med rätt support och inställning. Hon hjälper dig att bryta igenom mentala barriärer och upptäcka din fulla potential.",
		ImageKey:  "3109997f-cdb8-4446-ab26-54c7933ce27a",
		Instagram: "@michanfristal",
		Specialties: []string{
			"Mental träning", "Löpträning", "Uthållighetsträning", "Målsättning",
		},
		Reviews: []Review{
			{Text: "Michan har hjälpt mig att tro på mig själv igen. Hon ser potentialen i en även när man själv inte gör det.", Author: "Andreas L."},
		},
	},
	{
		ID:        "joel",
		Name:      "Joel Thorén",
		ShortName: "PT Joel",
		Email:     "joel@coregymclub.se",
		Phone:     "070-456 78 90",
		Quote:     "Min bakgrund som elitidrottare ger mig en djup förståelse för hur träning ska vara anpassad och effektiv. Jag hjälper dig nå dina mål med personligt anpassade program som fokuserar på både teknik och resultat.",
		Bio:       "Med sin bakgrund som elitidrottare förstår Joel vad som krävs för att nå toppen. Han tar med sig sina erfarenheter och skapar träningsprogram som levererar resultat.",
		ImageKey:  "a0a45ca4-15e5-430c-8cda-701b59ae73fd",
		Instagram: "@joelthoren",
		Specialties: []string{
			"Prestandaoptimering", "Olympiska lyft", "Idrottsspecifik träning", "Periodisering",
		},
		Reviews: []Review{
			{Text: "Joels tekniska kunskap är oslagbar. Han har fått mig att förstå varför varje övning är viktig.", Author: "Martin H."},
			{Text: "Bästa investeringen jag gjort! Joel är proffsig, motiverande och får en att känna sig trygg.", Author: "Sara L."},
			{Text: "Med Joels hjälp har jag nått mål jag inte trodde var möjliga. Hans kunskap om olympiska lyft är exceptionell.", Author: "Erik N."},
		},
	},
}
