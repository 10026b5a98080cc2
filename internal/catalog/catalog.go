// Package catalog holds the static game plan pricing data. The catalog is
// read-only for the process lifetime; handlers look plans up by game key
// and handle misses explicitly.
package catalog

// Plan is one purchasable tier within a game's pricing entry.
type Plan struct {
	Name     string
	Price    int // monthly price in INR; 0 means unpriced (placeholder)
	Popular  bool
	Features []string
}

// Catalog is the plan list for one game key.
type Catalog struct {
	Title string
	Plans []Plan
}

// gamePlans maps a game key to its catalog entry.
var gamePlans = map[string]Catalog{
	"minecraft_budget": {
		Title: "Minecraft Budget Plans",
		Plans: []Plan{
			{Name: "Grass", Price: 30, Features: []string{"1GB DDR4 RAM", "50% CPU", "5GB Disk", "20 Player Slots", "Basic DDoS Protection"}},
			{Name: "Dirt", Price: 60, Popular: true, Features: []string{"2GB DDR4 RAM", "80% CPU", "10GB Disk", "40 Player Slots", "Advanced DDoS Protection"}},
			{Name: "Stone", Price: 100, Features: []string{"3GB DDR4 RAM", "110% CPU", "15GB Disk", "Unlimited Player Slots", "Advanced DDoS Protection", "Dedicated IP Included"}},
			{Name: "Iron", Price: 130, Features: []string{"4GB DDR4 RAM", "140% CPU", "20GB Disk", "Unlimited Player Slots", "Advanced DDoS Protection", "Dedicated IP Included"}},
			{Name: "Gold", Price: 180, Features: []string{"5GB DDR4 RAM", "170% CPU", "25GB Disk", "Unlimited Player Slots", "Advanced DDoS Protection", "Dedicated IP Included"}},
			{Name: "Diamond", Price: 250, Features: []string{"6GB DDR4 RAM", "200% CPU", "30GB Disk", "Unlimited Player Slots", "Advanced DDoS Protection", "Dedicated IP Included"}},
		},
	},
	"minecraft_plans": {
		Title: "Minecraft Plans",
		Plans: []Plan{
			{Name: "Grass", Price: 350, Features: []string{"8GB DDR4 RAM", "200% AMD Ryzen 7 CPU", "20GB Disk", "Delhi, Singapore, Dubai Locations"}},
			{Name: "Iron", Price: 600, Popular: true, Features: []string{"16GB DDR4 RAM", "400% AMD Ryzen 7 CPU", "100GB Disk", "Delhi, Singapore, Dubai Locations"}},
			{Name: "Gold", Price: 1250, Features: []string{"32GB DDR4 RAM", "800% AMD Ryzen 7 CPU", "250GB Disk", "Delhi, Singapore, Dubai Locations"}},
			{Name: "Diamond", Price: 1500, Features: []string{"48GB DDR4 RAM", "1200% AMD Ryzen 7 CPU", "384GB Disk", "Delhi, Singapore, Dubai Locations"}},
			{Name: "Netherite", Price: 1700, Features: []string{"64GB DDR4 RAM", "2400% AMD Ryzen 7 CPU", "512GB Disk", "Delhi, Singapore, Dubai Locations"}},
		},
	},
	"offers": {
		Title: "Special Offers",
		Plans: []Plan{
			{Name: "Minecraft Server 6GB", Price: 199, Features: []string{"6GB RAM", "170% AMD Ryzen 7 CPU", "15GB Disk", "1 Backup", "Code DRAGONOP for 10% off"}},
			{Name: "Coming Soon: More Offers"},
		},
	},
}

// Lookup returns the catalog entry for a game key. The second return is
// false when the key is unknown.
func Lookup(gameKey string) (Catalog, bool) {
	c, ok := gamePlans[gameKey]
	return c, ok
}

// Keys returns the known game keys. Order is not significant.
func Keys() []string {
	keys := make([]string, 0, len(gamePlans))
	for k := range gamePlans {
		keys = append(keys, k)
	}
	return keys
}
