package recipe

// LanguageEnglish and LanguageFrench are the supported content languages.
const (
	LanguageEnglish = "en"
	LanguageFrench  = "fr"
)

// SupportedLanguage reports whether the service can localize into lang.
func SupportedLanguage(lang string) bool {
	return lang == LanguageEnglish || lang == LanguageFrench
}

// Overlay is a per-language replacement of a recipe's display fields.
type Overlay struct {
	Name         string
	Ingredients  string
	Instructions string
}

// overlays joins translations to recipes by canonical (English) name.
// Renaming a canonical recipe silently drops its translation; entries here
// must track catalog.go. Not every recipe has a French entry, missing ones
// fall back to the canonical record.
var overlays = map[string]map[string]Overlay{
	LanguageFrench: {
		"Comforting Mac and Cheese": {
			Name:         "Macaronis au fromage réconfortants",
			Ingredients:  "Macaronis, cheddar, lait, beurre, farine, chapelure",
			Instructions: "1. Cuire les macaronis\n2. Préparer une sauce au fromage avec le beurre, la farine, le lait et le fromage\n3. Mélanger et couvrir de chapelure\n4. Cuire au four jusqu'à ce que ce soit doré",
		},
		"Warm Chocolate Chip Cookies": {
			Name:         "Cookies tièdes aux pépites de chocolat",
			Ingredients:  "Farine, beurre, cassonade, sucre blanc, œufs, vanille, pépites de chocolat, sel",
			Instructions: "1. Battre le beurre avec les sucres\n2. Ajouter les œufs et la vanille\n3. Incorporer les ingrédients secs\n4. Ajouter les pépites de chocolat\n5. Cuire à 190°C pendant 10 à 12 minutes",
		},
		"Creamy Mashed Potatoes": {
			Name:         "Purée de pommes de terre onctueuse",
			Ingredients:  "Pommes de terre, beurre, lait, sel, poivre, ail en poudre",
			Instructions: "1. Faire bouillir les pommes de terre jusqu'à tendreté\n2. Égoutter et écraser\n3. Ajouter le beurre, le lait et les assaisonnements\n4. Fouetter jusqu'à consistance crémeuse",
		},
		"Grilled Cheese with Tomato Soup": {
			Name:         "Croque au fromage et soupe de tomates",
			Ingredients:  "Pain, cheddar, beurre, tomates, crème, basilic, ail",
			Instructions: "1. Préparer le croque au beurre et au fromage\n2. Mixer les tomates, la crème et les assaisonnements pour la soupe\n3. Chauffer la soupe et servir ensemble",
		},
		"Energizing Smoothie Bowl": {
			Name:         "Smoothie bowl énergisant",
			Ingredients:  "Banane, fruits rouges, yaourt, granola, miel, graines de chia",
			Instructions: "1. Mixer la banane, les fruits rouges et le yaourt\n2. Verser dans un bol\n3. Garnir de granola, de miel et de graines de chia",
		},
		"Rainbow Fruit Salad": {
			Name:         "Salade de fruits arc-en-ciel",
			Ingredients:  "Fraises, oranges, ananas, kiwi, raisins, menthe, miel",
			Instructions: "1. Laver et couper tous les fruits\n2. Mélanger dans un grand bol\n3. Arroser de miel\n4. Garnir de menthe fraîche",
		},
		"Sunny Side Up Toast": {
			Name:         "Tartine à l'œuf au plat",
			Ingredients:  "Pain au levain, œufs, avocat, tomates cerises, jeunes pousses, huile d'olive",
			Instructions: "1. Griller le pain\n2. Cuire les œufs au plat\n3. Écraser l'avocat sur la tartine\n4. Garnir d'œufs, de tomates et de pousses",
		},
		"Spicy Chicken Tacos": {
			Name:         "Tacos de poulet épicés",
			Ingredients:  "Blanc de poulet, tortillas, sauce piquante, oignons, coriandre, citron vert",
			Instructions: "1. Assaisonner et cuire le poulet aux épices\n2. Réchauffer les tortillas\n3. Garnir les tacos\n4. Servir avec des quartiers de citron vert",
		},
		"Volcano Wings": {
			Name:         "Ailes de poulet volcaniques",
			Ingredients:  "Ailes de poulet, sauce piquante, beurre, ail, poivre de Cayenne, sauce au bleu",
			Instructions: "1. Frire ou cuire les ailes jusqu'à ce qu'elles soient croustillantes\n2. Préparer le mélange de sauce piquante\n3. Enrober les ailes de sauce\n4. Servir avec la sauce au bleu",
		},
		"Calming Chamomile Tea Cookies": {
			Name:         "Biscuits apaisants à la camomille",
			Ingredients:  "Farine, beurre, sucre, tisane de camomille, vanille, œuf",
			Instructions: "1. Mélanger les ingrédients secs avec la camomille moulue\n2. Battre le beurre et le sucre\n3. Assembler et façonner les biscuits\n4. Cuire jusqu'à coloration dorée",
		},
		"Mindful Matcha Latte": {
			Name:         "Matcha latte de pleine conscience",
			Ingredients:  "Poudre de matcha, lait d'amande, miel, vanille, eau chaude",
			Instructions: "1. Fouetter le matcha avec l'eau chaude\n2. Chauffer le lait d'amande\n3. Ajouter le miel et la vanille\n4. Remuer doucement et servir",
		},
		"Soothing Oatmeal with Berries": {
			Name:         "Porridge apaisant aux fruits rouges",
			Ingredients:  "Flocons d'avoine, lait d'amande, fruits rouges, miel, cannelle, noix",
			Instructions: "1. Cuire l'avoine dans le lait d'amande\n2. Ajouter la cannelle et le miel\n3. Garnir de fruits rouges frais et de noix\n4. Laisser reposer 5 minutes",
		},
		"Cozy Chicken Soup": {
			Name:         "Soupe de poulet réconfortante",
			Ingredients:  "Poulet, légumes, bouillon, herbes, nouilles",
			Instructions: "1. Mijoter le poulet avec les légumes et les herbes\n2. Ajouter les nouilles\n3. Cuire jusqu'à ce que les nouilles soient tendres",
		},
		"Ginger Lemon Tea": {
			Name:         "Tisane gingembre-citron",
			Ingredients:  "Gingembre frais, citron, miel, eau chaude, curcuma",
			Instructions: "1. Trancher le gingembre et le citron\n2. Faire bouillir l'eau avec le gingembre\n3. Ajouter le citron et le miel\n4. Filtrer et servir chaud",
		},
		"Gentle Rice Porridge": {
			Name:         "Bouillie de riz douce",
			Ingredients:  "Riz blanc, bouillon de poulet, gingembre, oignons verts, sauce soja",
			Instructions: "1. Cuire le riz dans le bouillon jusqu'à ce qu'il soit très tendre\n2. Ajouter le gingembre et les oignons verts\n3. Assaisonner de sauce soja\n4. Servir chaud",
		},
		"Chocolate Lava Cake": {
			Name:         "Fondant au chocolat",
			Ingredients:  "Chocolat noir, beurre, œufs, sucre, farine, vanille",
			Instructions: "1. Faire fondre le chocolat et le beurre\n2. Mélanger avec les autres ingrédients\n3. Cuire dans des ramequins\n4. Servir tiède avec une glace",
		},
		"Strawberry Champagne Sorbet": {
			Name:         "Sorbet fraise-champagne",
			Ingredients:  "Fraises, champagne, sucre, jus de citron, menthe",
			Instructions: "1. Mixer les fraises avec le champagne\n2. Ajouter le sucre et le citron\n3. Turbiner en sorbetière\n4. Garnir de menthe",
		},
		"Truffle Pasta": {
			Name:         "Pâtes à la truffe",
			Ingredients:  "Fettuccine, huile de truffe, parmesan, beurre, ail, persil",
			Instructions: "1. Cuire les pâtes al dente\n2. Faire revenir l'ail dans le beurre\n3. Mélanger avec l'huile de truffe et le parmesan\n4. Garnir de persil",
		},
		"Dark Chocolate Covered Strawberries": {
			Name:         "Fraises enrobées de chocolat noir",
			Ingredients:  "Fraises fraîches, chocolat noir, chocolat blanc, huile de coco",
			Instructions: "1. Faire fondre le chocolat noir\n2. Tremper les fraises\n3. Décorer de filets de chocolat blanc\n4. Réfrigérer jusqu'à prise",
		},
		"Fresh Garden Salad": {
			Name:         "Salade fraîche du jardin",
			Ingredients:  "Jeunes pousses, tomates, concombre, avocat, noix, vinaigrette",
			Instructions: "1. Laver et couper les légumes\n2. Mélanger dans un bol\n3. Ajouter les noix et la vinaigrette\n4. Remuer délicatement",
		},
		"Cucumber Mint Water": {
			Name:         "Eau concombre-menthe",
			Ingredients:  "Concombre, menthe fraîche, citron, eau, glaçons",
			Instructions: "1. Trancher le concombre et le citron\n2. Ajouter les feuilles de menthe\n3. Compléter avec de l'eau froide\n4. Laisser infuser 30 minutes",
		},
		"Thai Green Curry": {
			Name:         "Curry vert thaïlandais",
			Ingredients:  "Lait de coco, pâte de curry vert, légumes, tofu, sauce poisson, basilic",
			Instructions: "1. Faire revenir la pâte de curry dans le lait de coco\n2. Ajouter les légumes et le tofu\n3. Mijoter jusqu'à tendreté\n4. Garnir de basilic",
		},
		"Moroccan Couscous": {
			Name:         "Couscous marocain",
			Ingredients:  "Couscous, pois chiches, abricots, amandes, cannelle, curcuma, menthe",
			Instructions: "1. Cuire le couscous avec les épices\n2. Ajouter les pois chiches et les abricots\n3. Torréfier les amandes\n4. Garnir de menthe fraîche",
		},
	},
}

// lookupOverlay finds the overlay entry for a language and canonical name.
func lookupOverlay(language, canonicalName string) (Overlay, bool) {
	byName, ok := overlays[language]
	if !ok {
		return Overlay{}, false
	}
	o, ok := byName[canonicalName]
	return o, ok
}
