// AngelaMos | 2026
// seed.go

package content

// Static marketing content served as-is.

var testimonials = []Testimonial{
	{
		ID:     1,
		Author: "Ayité Kponou",
		Role:   "Locataire",
		City:   "Cotonou",
		Quote:  "J'ai trouvé mon appartement à Gbegamey en deux jours, sans intermédiaire douteux.",
		Rating: 5,
	},
	{
		ID:     2,
		Author: "Chantal Dossou",
		Role:   "Démarcheuse",
		City:   "Porto-Novo",
		Quote:  "Mes annonces touchent dix fois plus de monde qu'avec les affiches papier.",
		Rating: 5,
	},
	{
		ID:     3,
		Author: "Rachidi Soglo",
		Role:   "Propriétaire",
		City:   "Abomey-Calavi",
		Quote:  "Ma villa a été louée en une semaine. Le suivi des contacts est très pratique.",
		Rating: 4,
	},
}

var benefits = []Benefit{
	{
		ID:          1,
		Title:       "Annonces vérifiées",
		Description: "Chaque démarcheur est validé avant de pouvoir publier.",
		Icon:        "shield-check",
	},
	{
		ID:          2,
		Title:       "Recherche par quartier",
		Description: "Filtrez par ville, quartier, type de bien et budget en FCFA.",
		Icon:        "map-pin",
	},
	{
		ID:          3,
		Title:       "Contact direct",
		Description: "Appelez le démarcheur directement, sans frais cachés.",
		Icon:        "phone",
	},
	{
		ID:          4,
		Title:       "Photos réelles",
		Description: "Jusqu'à six photos par annonce, téléversées par le démarcheur.",
		Icon:        "camera",
	},
}

func Testimonials() []Testimonial {
	return testimonials
}

func Benefits() []Benefit {
	return benefits
}
