package fluency

// SubCategory defines one semantic sub-category used for cluster and
// switch detection within a semantic fluency trial.
type SubCategory struct {
	ID       string
	Category string
	Label    string
	Members  []string
}

// seedSubCategories is the built-in sub-category table. Membership is
// matched against normalized words.
var seedSubCategories = []SubCategory{
	{
		ID: "animals/pets", Category: "animals", Label: "Pets",
		Members: []string{
			"dog", "cat", "hamster", "rabbit", "parrot", "goldfish",
			"guinea", "gerbil", "canary", "ferret",
		},
	},
	{
		ID: "animals/wild", Category: "animals", Label: "Wild animals",
		Members: []string{
			"lion", "tiger", "elephant", "giraffe", "zebra", "bear",
			"wolf", "fox", "deer", "monkey", "leopard", "rhino",
			"hippo", "cheetah", "kangaroo",
		},
	},
	{
		ID: "animals/farm", Category: "animals", Label: "Farm animals",
		Members: []string{
			"cow", "horse", "pig", "sheep", "goat", "chicken",
			"duck", "turkey", "donkey", "rooster",
		},
	},
	{
		ID: "animals/marine", Category: "animals", Label: "Marine animals",
		Members: []string{
			"whale", "dolphin", "shark", "octopus", "seal", "crab",
			"lobster", "jellyfish", "salmon", "tuna", "squid",
		},
	},
	{
		ID: "fruits/citrus", Category: "fruits", Label: "Citrus",
		Members: []string{
			"orange", "lemon", "lime", "grapefruit", "tangerine",
			"mandarin", "clementine",
		},
	},
	{
		ID: "fruits/berries", Category: "fruits", Label: "Berries",
		Members: []string{
			"strawberry", "blueberry", "raspberry", "blackberry",
			"cranberry", "gooseberry",
		},
	},
	{
		ID: "fruits/tropical", Category: "fruits", Label: "Tropical",
		Members: []string{
			"banana", "mango", "pineapple", "papaya", "coconut",
			"guava", "passionfruit", "kiwi",
		},
	},
	{
		ID: "fruits/stone", Category: "fruits", Label: "Stone fruits",
		Members: []string{
			"peach", "plum", "cherry", "apricot", "nectarine",
		},
	},
}

// byMember maps category -> normalized word -> sub-category ID.
var byMember map[string]map[string]string

func init() {
	byMember = make(map[string]map[string]string)
	for _, sc := range seedSubCategories {
		words := byMember[sc.Category]
		if words == nil {
			words = make(map[string]string)
			byMember[sc.Category] = words
		}
		for _, w := range sc.Members {
			words[w] = sc.ID
		}
	}
}

// SubCategoryFor returns the sub-category ID a normalized word belongs
// to within category, or "" if the word is not in the table.
func SubCategoryFor(category, word string) string {
	return byMember[category][word]
}

// Categories returns the semantic categories with sub-category tables.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, sc := range seedSubCategories {
		if !seen[sc.Category] {
			seen[sc.Category] = true
			out = append(out, sc.Category)
		}
	}
	return out
}
