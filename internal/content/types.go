package content

// Document is the content document served as data.json. Every section is
// optional: a nil subtree means the page keeps whatever the skeleton holds.
type Document struct {
	Hero           *Hero            `json:"hero,omitempty"`
	About          *About           `json:"about,omitempty"`
	DetailedSkills []DetailedSkill  `json:"detailedSkills,omitempty"`
	Experience     []ExperienceItem `json:"experience,omitempty"`
	Contact        *Contact         `json:"contact,omitempty"`
}

type Hero struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image,omitempty"`
	Social      *Social `json:"social,omitempty"`
}

// Social holds the hero's outbound links. Email is used verbatim as the
// href, so it usually carries its own mailto: prefix.
type Social struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Email     string `json:"email,omitempty"`
}

type About struct {
	Objective      string          `json:"objective"`
	Education      []EducationItem `json:"education,omitempty"`
	SoftSkills     []string        `json:"softSkills,omitempty"`
	Certifications []string        `json:"certifications,omitempty"`
	Languages      []string        `json:"languages,omitempty"`
}

type EducationItem struct {
	Degree  string `json:"degree"`
	School  string `json:"school"`
	Details string `json:"details"`
}

type DetailedSkill struct {
	Title    string   `json:"title"`
	Overview string   `json:"overview"`
	Tools    []string `json:"tools"`
}

type ExperienceItem struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type Contact struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Location  string `json:"location"`
}

// Project is one entry of projects.json.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Link        string   `json:"link,omitempty"`
}

// Bundle is the result of a successful load: both documents, decoded.
// Projects is nil when projects.json holds null.
type Bundle struct {
	Document *Document
	Projects []Project
}
