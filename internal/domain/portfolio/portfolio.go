package portfolio

import (
	"github.com/sanketgaikwad/portfolio-api/internal/domain/certification"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/contact"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/education"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/internship"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/profile"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/project"
)

// Collection names the addressable content collections. They double as the
// persisted layout keys and as the event payload resource names.
type Collection string

const (
	CollectionProfile         Collection = "profile"
	CollectionEducation       Collection = "education"
	CollectionInternships     Collection = "internships"
	CollectionProjects        Collection = "projects"
	CollectionOngoingProjects Collection = "ongoingProjects"
	CollectionCertifications  Collection = "certifications"
	CollectionContacts        Collection = "contacts"
)

// Snapshot is the aggregate of all content collections plus the profile
// singleton, fetched and cached as one unit.
type Snapshot struct {
	Profile         *profile.Profile              `json:"profile"`
	Education       []education.Education         `json:"education"`
	Internships     []internship.Internship       `json:"internships"`
	Projects        []project.Project             `json:"projects"`
	OngoingProjects []project.Project             `json:"ongoing_projects"`
	Certifications  []certification.Certification `json:"certifications"`
	Contacts        []contact.Contact             `json:"contacts"`
}

// Clone deep-copies the snapshot so subscribers can never mutate the
// store's master copy through a shared slice.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{}
	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	out.Education = append([]education.Education(nil), s.Education...)
	out.Internships = make([]internship.Internship, len(s.Internships))
	for i, it := range s.Internships {
		it.Images = append([]string(nil), it.Images...)
		out.Internships[i] = it
	}
	out.Projects = cloneProjects(s.Projects)
	out.OngoingProjects = cloneProjects(s.OngoingProjects)
	out.Certifications = append([]certification.Certification(nil), s.Certifications...)
	out.Contacts = append([]contact.Contact(nil), s.Contacts...)
	return out
}

func cloneProjects(in []project.Project) []project.Project {
	out := make([]project.Project, len(in))
	for i, p := range in {
		p.Technologies = append([]string(nil), p.Technologies...)
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}
