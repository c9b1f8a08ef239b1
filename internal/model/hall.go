package model

// Hall represents a residential hall.  Halls are static reference
// data seeded once at startup: every other entity (forms, seats,
// applications, notifications, complaints) is scoped to a hall by id.
//
// Fields:
//  ID              – primary key identifier.
//  Name            – full official hall name.
//  ShortCode       – short code such as ASH or HBK, used for image
//                    lookup and student-id prefix resolution.
//  Category        – Male or Female.
//  Capacity        – nominal number of residents.
//  EstablishedYear – year the hall opened.
//  ProvostName     – current provost.
//  ProvostContact  – provost email or phone.
//  ImageURL        – remote image of the building.
//  LocalImage      – explicit local image override, takes precedence.
//  FallbackImage   – generic image used when nothing else resolves.
type Hall struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	ShortCode       string `json:"short_code"`
	Category        string `json:"category"`
	Capacity        uint32 `json:"capacity"`
	EstablishedYear uint32 `json:"established_year"`
	ProvostName     string `json:"provost_name"`
	ProvostContact  string `json:"provost_contact"`
	ImageURL        string `json:"image_url"`
	LocalImage      string `json:"local_image,omitempty"`
	FallbackImage   string `json:"fallback_image,omitempty"`
}
