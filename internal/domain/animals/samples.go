package animals

// SampleAnimals es la lista local que se usa cuando API Ninjas no está
// disponible o no hay API key. Siempre son 8 registros completos.
var SampleAnimals = []Animal{
	{
		Name:            "Lion",
		Emoji:           "🦁",
		Characteristics: &Characteristics{Habitat: "Savannah", Diet: "Carnivore"},
		Fact:            "Lions live in prides and are known as the king of the jungle.",
	},
	{
		Name:            "Elephant",
		Emoji:           "🐘",
		Characteristics: &Characteristics{Habitat: "Savannah and forests", Diet: "Herbivore"},
		Fact:            "Elephants use their trunks to drink and communicate.",
	},
	{
		Name:            "Giraffe",
		Emoji:           "🦒",
		Characteristics: &Characteristics{Habitat: "Savannah", Diet: "Herbivore"},
		Fact:            "Giraffes have the same number of neck vertebrae as humans.",
	},
	{
		Name:            "Penguin",
		Emoji:           "🐧",
		Characteristics: &Characteristics{Habitat: "Antarctica", Diet: "Carnivore"},
		Fact:            "Penguins can slide on their bellies across ice.",
	},
	{
		Name:            "Kangaroo",
		Emoji:           "🦘",
		Characteristics: &Characteristics{Habitat: "Australian Outback", Diet: "Herbivore"},
		Fact:            "Kangaroos can jump up to three times their height.",
	},
	{
		Name:            "Panda",
		Emoji:           "🐼",
		Characteristics: &Characteristics{Habitat: "Bamboo forests", Diet: "Herbivore"},
		Fact:            "Pandas spend most of their day eating bamboo.",
	},
	{
		Name:            "Tiger",
		Emoji:           "🐯",
		Characteristics: &Characteristics{Habitat: "Rainforests", Diet: "Carnivore"},
		Fact:            "No two tigers have the same stripes.",
	},
	{
		Name:            "Dolphin",
		Emoji:           "🐬",
		Characteristics: &Characteristics{Habitat: "Oceans", Diet: "Carnivore"},
		Fact:            "Dolphins are highly intelligent and communicate with clicks.",
	},
}
