package catalog

import (
	"recipe-study-backend/entities"
)

// SampleCatalog returns a small built-in set of Hungarian recipes used when
// no preprocessed catalog file is available.
func SampleCatalog() *Catalog {
	samples := []entities.Recipe{
		{
			RecipeID:     1,
			Title:        "Hagyományos Gulyásleves",
			Ingredients:  "marhahús, hagyma, paprika, paradicsom, burgonya, fokhagyma, kömény, majoranna",
			Instructions: "A húst kockákra vágjuk és enyhén megsózzuk. Megdinszteljük a hagymát, hozzáadjuk a paprikát. Felöntjük vízzel és főzzük másfél órát. Hozzáadjuk a burgonyát és tovább főzzük.",
			ImageURL:     "/static/images/gulyasleves.jpg",
			HealthScore:  75, EnvScore: 60, PopScore: 90,
		},
		{
			RecipeID:     2,
			Title:        "Vegetáriánus Lecsó",
			Ingredients:  "paprika, paradicsom, hagyma, tojás, tofu, olívaolaj, só, bors, fokhagyma",
			Instructions: "A hagymát és fokhagymát megdinszteljük olívaolajban. Hozzáadjuk a felszeletelt paprikát, majd a paradicsomot és a kockára vágott tofut. Tojással dúsítjuk.",
			ImageURL:     "/static/images/lecso.jpg",
			HealthScore:  85, EnvScore: 90, PopScore: 70,
		},
		{
			RecipeID:     3,
			Title:        "Rántott Schnitzel Burgonyával",
			Ingredients:  "sertéshús, liszt, tojás, zsemlemorzsa, burgonya, olaj, só, bors",
			Instructions: "A húst kikalapáljuk és megsózzuk. Lisztbe, felvert tojásba, végül zsemlemorzsába forgatjuk. Forró olajban mindkét oldalán kisütjük. A burgonyát héjában megfőzzük.",
			ImageURL:     "/static/images/schnitzel.jpg",
			HealthScore:  55, EnvScore: 45, PopScore: 85,
		},
		{
			RecipeID:     4,
			Title:        "Halászlé Szegedi Módra",
			Ingredients:  "ponty, csuka, harcsa, hagyma, paradicsom, paprika, só, babérlevél",
			Instructions: "A halakat megtisztítjuk és feldaraboljuk. A fejekből és farkakból erős alapot főzünk, leszűrjük, majd beletesszük a haldarabokat. Paprikával ízesítjük.",
			ImageURL:     "/static/images/halaszle.jpg",
			HealthScore:  80, EnvScore: 70, PopScore: 75,
		},
		{
			RecipeID:     5,
			Title:        "Töltött Káposzta",
			Ingredients:  "savanyú káposzta, darált hús, rizs, hagyma, paprika, kolbász, tejföl",
			Instructions: "A káposztaleveleket leforrázzuk, megtöltjük a húsos rizzsel, majd rétegesen főzzük.",
			ImageURL:     "/static/images/toltott_kaposzta.jpg",
			HealthScore:  70, EnvScore: 55, PopScore: 88,
		},
	}
	for i := range samples {
		samples[i].Composite = CompositeScore(samples[i].HealthScore, samples[i].EnvScore, samples[i].PopScore)
	}
	return New(samples)
}
