package recipe

// Seed holds the canonical recipe catalog. The data is versioned in code
// and written to the database once, the first time the service starts
// against an empty store.
var Seed = []Recipe{
	// Sad mood
	{
		Name:            "Comforting Mac and Cheese",
		Ingredients:     "Macaroni, cheddar cheese, milk, butter, flour, breadcrumbs",
		Instructions:    "1. Cook macaroni\n2. Make cheese sauce with butter, flour, milk, and cheese\n3. Combine and top with breadcrumbs\n4. Bake until golden",
		Mood:            "sad",
		PrepTimeMinutes: 30,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Warm Chocolate Chip Cookies",
		Ingredients:     "Flour, butter, brown sugar, white sugar, eggs, vanilla, chocolate chips, salt",
		Instructions:    "1. Cream butter and sugars\n2. Add eggs and vanilla\n3. Mix in dry ingredients\n4. Fold in chocolate chips\n5. Bake at 375°F for 10-12 minutes",
		Mood:            "sad",
		PrepTimeMinutes: 25,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Creamy Mashed Potatoes",
		Ingredients:     "Potatoes, butter, milk, salt, pepper, garlic powder",
		Instructions:    "1. Boil potatoes until tender\n2. Drain and mash\n3. Add butter, milk, and seasonings\n4. Whip until creamy",
		Mood:            "sad",
		PrepTimeMinutes: 35,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Grilled Cheese with Tomato Soup",
		Ingredients:     "Bread, cheddar cheese, butter, tomatoes, cream, basil, garlic",
		Instructions:    "1. Make grilled cheese with butter and cheese\n2. Blend tomatoes, cream, and seasonings for soup\n3. Heat soup and serve together",
		Mood:            "sad",
		PrepTimeMinutes: 20,
		Difficulty:      DifficultyEasy,
	},

	// Happy mood
	{
		Name:            "Energizing Smoothie Bowl",
		Ingredients:     "Banana, berries, yogurt, granola, honey, chia seeds",
		Instructions:    "1. Blend banana, berries, and yogurt\n2. Pour into bowl\n3. Top with granola, honey, and chia seeds",
		Mood:            "happy",
		PrepTimeMinutes: 10,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Rainbow Fruit Salad",
		Ingredients:     "Strawberries, oranges, pineapple, kiwi, grapes, mint, honey",
		Instructions:    "1. Wash and cut all fruits\n2. Combine in large bowl\n3. Drizzle with honey\n4. Garnish with fresh mint",
		Mood:            "happy",
		PrepTimeMinutes: 15,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Colorful Buddha Bowl",
		Ingredients:     "Quinoa, sweet potato, avocado, chickpeas, kale, tahini, lemon",
		Instructions:    "1. Cook quinoa\n2. Roast sweet potato and chickpeas\n3. Massage kale with lemon\n4. Arrange in bowl with tahini dressing",
		Mood:            "happy",
		PrepTimeMinutes: 30,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Sunny Side Up Toast",
		Ingredients:     "Sourdough bread, eggs, avocado, cherry tomatoes, microgreens, olive oil",
		Instructions:    "1. Toast bread\n2. Fry eggs sunny side up\n3. Mash avocado on toast\n4. Top with eggs, tomatoes, and greens",
		Mood:            "happy",
		PrepTimeMinutes: 12,
		Difficulty:      DifficultyEasy,
	},

	// Excited mood
	{
		Name:            "Spicy Chicken Tacos",
		Ingredients:     "Chicken breast, tortillas, hot sauce, onions, cilantro, lime",
		Instructions:    "1. Season and cook chicken with spices\n2. Warm tortillas\n3. Assemble tacos with toppings\n4. Serve with lime wedges",
		Mood:            "excited",
		PrepTimeMinutes: 25,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Dragon Breath Ramen",
		Ingredients:     "Ramen noodles, chicken broth, ghost peppers, garlic, ginger, soy sauce, green onions",
		Instructions:    "1. Simmer broth with peppers and aromatics\n2. Cook noodles\n3. Add hot sauce to taste\n4. Garnish with green onions",
		Mood:            "excited",
		PrepTimeMinutes: 20,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Volcano Wings",
		Ingredients:     "Chicken wings, hot sauce, butter, garlic, cayenne pepper, blue cheese dip",
		Instructions:    "1. Fry or bake wings until crispy\n2. Make hot sauce mixture\n3. Toss wings in sauce\n4. Serve with blue cheese dip",
		Mood:            "excited",
		PrepTimeMinutes: 40,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Firecracker Shrimp",
		Ingredients:     "Shrimp, flour, eggs, hot sauce, honey, garlic, green onions",
		Instructions:    "1. Bread shrimp in flour and eggs\n2. Fry until golden\n3. Toss in spicy sauce\n4. Garnish with green onions",
		Mood:            "excited",
		PrepTimeMinutes: 25,
		Difficulty:      DifficultyMedium,
	},

	// Anxious mood
	{
		Name:            "Calming Chamomile Tea Cookies",
		Ingredients:     "Flour, butter, sugar, chamomile tea, vanilla, egg",
		Instructions:    "1. Mix dry ingredients with ground chamomile\n2. Cream butter and sugar\n3. Combine and shape cookies\n4. Bake until golden",
		Mood:            "anxious",
		PrepTimeMinutes: 45,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Lavender Honey Toast",
		Ingredients:     "Sourdough bread, honey, lavender buds, butter, sea salt",
		Instructions:    "1. Toast bread until golden\n2. Spread with butter\n3. Drizzle with lavender honey\n4. Sprinkle with sea salt",
		Mood:            "anxious",
		PrepTimeMinutes: 8,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Mindful Matcha Latte",
		Ingredients:     "Matcha powder, almond milk, honey, vanilla, hot water",
		Instructions:    "1. Whisk matcha with hot water\n2. Heat almond milk\n3. Combine with honey and vanilla\n4. Stir gently and serve",
		Mood:            "anxious",
		PrepTimeMinutes: 10,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Soothing Oatmeal with Berries",
		Ingredients:     "Steel-cut oats, almond milk, berries, honey, cinnamon, nuts",
		Instructions:    "1. Cook oats with almond milk\n2. Add cinnamon and honey\n3. Top with fresh berries and nuts\n4. Let sit for 5 minutes",
		Mood:            "anxious",
		PrepTimeMinutes: 20,
		Difficulty:      DifficultyEasy,
	},

	// Sick mood
	{
		Name:            "Cozy Chicken Soup",
		Ingredients:     "Chicken, vegetables, broth, herbs, noodles",
		Instructions:    "1. Simmer chicken with vegetables and herbs\n2. Add noodles\n3. Cook until noodles are tender",
		Mood:            "sick",
		PrepTimeMinutes: 60,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Ginger Lemon Tea",
		Ingredients:     "Fresh ginger, lemon, honey, hot water, turmeric",
		Instructions:    "1. Slice ginger and lemon\n2. Boil water with ginger\n3. Add lemon and honey\n4. Strain and serve hot",
		Mood:            "sick",
		PrepTimeMinutes: 15,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Gentle Rice Porridge",
		Ingredients:     "White rice, chicken broth, ginger, green onions, soy sauce",
		Instructions:    "1. Cook rice in broth until very soft\n2. Add ginger and green onions\n3. Season with soy sauce\n4. Serve warm",
		Mood:            "sick",
		PrepTimeMinutes: 30,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Honey Toast with Cinnamon",
		Ingredients:     "White bread, honey, cinnamon, butter, warm milk",
		Instructions:    "1. Toast bread lightly\n2. Spread with butter and honey\n3. Sprinkle with cinnamon\n4. Serve with warm milk",
		Mood:            "sick",
		PrepTimeMinutes: 10,
		Difficulty:      DifficultyEasy,
	},

	// Romantic mood
	{
		Name:            "Chocolate Lava Cake",
		Ingredients:     "Dark chocolate, butter, eggs, sugar, flour, vanilla",
		Instructions:    "1. Melt chocolate and butter\n2. Mix with other ingredients\n3. Bake in ramekins\n4. Serve warm with ice cream",
		Mood:            "romantic",
		PrepTimeMinutes: 35,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Strawberry Champagne Sorbet",
		Ingredients:     "Strawberries, champagne, sugar, lemon juice, mint",
		Instructions:    "1. Puree strawberries with champagne\n2. Add sugar and lemon\n3. Freeze in ice cream maker\n4. Garnish with mint",
		Mood:            "romantic",
		PrepTimeMinutes: 45,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Truffle Pasta",
		Ingredients:     "Fettuccine, truffle oil, parmesan, butter, garlic, parsley",
		Instructions:    "1. Cook pasta al dente\n2. Sauté garlic in butter\n3. Toss with truffle oil and parmesan\n4. Garnish with parsley",
		Mood:            "romantic",
		PrepTimeMinutes: 25,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Dark Chocolate Covered Strawberries",
		Ingredients:     "Fresh strawberries, dark chocolate, white chocolate, coconut oil",
		Instructions:    "1. Melt dark chocolate\n2. Dip strawberries\n3. Drizzle with white chocolate\n4. Chill until set",
		Mood:            "romantic",
		PrepTimeMinutes: 30,
		Difficulty:      DifficultyEasy,
	},

	// Refreshed mood
	{
		Name:            "Fresh Garden Salad",
		Ingredients:     "Mixed greens, tomatoes, cucumber, avocado, nuts, vinaigrette",
		Instructions:    "1. Wash and chop vegetables\n2. Combine in bowl\n3. Add nuts and dressing\n4. Toss gently",
		Mood:            "refreshed",
		PrepTimeMinutes: 15,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Cucumber Mint Water",
		Ingredients:     "Cucumber, fresh mint, lemon, water, ice",
		Instructions:    "1. Slice cucumber and lemon\n2. Add mint leaves\n3. Fill with cold water\n4. Let infuse for 30 minutes",
		Mood:            "refreshed",
		PrepTimeMinutes: 5,
		Difficulty:      DifficultyEasy,
	},
	{
		Name:            "Green Goddess Bowl",
		Ingredients:     "Kale, spinach, avocado, edamame, quinoa, tahini, lemon",
		Instructions:    "1. Massage kale with lemon\n2. Cook quinoa\n3. Arrange with avocado and edamame\n4. Drizzle with tahini sauce",
		Mood:            "refreshed",
		PrepTimeMinutes: 25,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Citrus Fruit Platter",
		Ingredients:     "Oranges, grapefruit, kiwi, mint, honey, coconut flakes",
		Instructions:    "1. Peel and segment citrus\n2. Arrange on platter\n3. Drizzle with honey\n4. Garnish with mint and coconut",
		Mood:            "refreshed",
		PrepTimeMinutes: 20,
		Difficulty:      DifficultyEasy,
	},

	// Adventurous mood
	{
		Name:            "Spicy Ramen Bowl",
		Ingredients:     "Ramen noodles, broth, eggs, vegetables, hot sauce, green onions",
		Instructions:    "1. Cook noodles\n2. Prepare spicy broth\n3. Add toppings\n4. Serve hot",
		Mood:            "adventurous",
		PrepTimeMinutes: 20,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Korean BBQ Tacos",
		Ingredients:     "Beef short ribs, tortillas, kimchi, gochujang, green onions, sesame seeds",
		Instructions:    "1. Marinate beef in Korean BBQ sauce\n2. Grill until charred\n3. Assemble with kimchi\n4. Top with sesame seeds",
		Mood:            "adventurous",
		PrepTimeMinutes: 40,
		Difficulty:      DifficultyHard,
	},
	{
		Name:            "Thai Green Curry",
		Ingredients:     "Coconut milk, green curry paste, vegetables, tofu, fish sauce, basil",
		Instructions:    "1. Sauté curry paste in coconut milk\n2. Add vegetables and tofu\n3. Simmer until tender\n4. Garnish with basil",
		Mood:            "adventurous",
		PrepTimeMinutes: 35,
		Difficulty:      DifficultyMedium,
	},
	{
		Name:            "Moroccan Couscous",
		Ingredients:     "Couscous, chickpeas, apricots, almonds, cinnamon, turmeric, mint",
		Instructions:    "1. Cook couscous with spices\n2. Add chickpeas and apricots\n3. Toast almonds\n4. Garnish with fresh mint",
		Mood:            "adventurous",
		PrepTimeMinutes: 25,
		Difficulty:      DifficultyMedium,
	},
}
