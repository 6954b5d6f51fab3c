package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ptasnack/snackbar-app/models"
)

type catalogEntry struct {
	Name     string
	Category string
	Price    float64
}

// ReferenceMenu is the fixed snack bar catalog the menu collection is seeded
// from. Ids are assigned fresh on every seed, so two seeds never share ids.
var ReferenceMenu = []catalogEntry{
	// SNACKS
	{"Frikandel", "SNACKS", 2.25},
	{"Frikandel Speciaal", "SNACKS", 2.75},
	{"Kroket", "SNACKS", 2.50},
	{"Rundvlees Kroket", "SNACKS", 3.30},
	{"Goulash Kroket", "SNACKS", 3.65},
	{"Berehap", "SNACKS", 3.50},
	{"Bitterballen (6)", "SNACKS", 3.95},
	{"Bamischijf", "SNACKS", 2.60},
	{"Nasischijf", "SNACKS", 2.60},
	{"Boerenbrok", "SNACKS", 2.75},
	{"Pikanto", "SNACKS", 2.95},
	{"Braadworst", "SNACKS", 3.60},
	{"Gehaktbal", "SNACKS", 5.25},
	{"Loempia", "SNACKS", 4.50},
	{"Shoarmarol", "SNACKS", 3.75},

	// PATAT
	{"Patat", "PATAT", 2.60},
	{"Grote Patat", "PATAT", 3.35},
	{"Raspatat", "PATAT", 2.60},
	{"Grote Raspatat", "PATAT", 3.35},
	{"Verse Friet met Schil", "PATAT", 3.00},

	// PATAT SPECIALS
	{"Waterfiets", "PATAT SPECIALS", 8.00},
	{"Catamaran", "PATAT SPECIALS", 8.50},
	{"Patat Bali", "PATAT SPECIALS", 7.75},
	{"Patat Pulled Pork", "PATAT SPECIALS", 10.00},
	{"Kapsalon", "PATAT SPECIALS", 11.00},
	{"Kipsalon", "PATAT SPECIALS", 11.00},

	// BURGERS
	{"Elite Burger", "BURGERS", 6.00},
	{"Elite Burger Speciaal", "BURGERS", 6.50},
	{"Rex Burger", "BURGERS", 7.00},
	{"Macho Burger", "BURGERS", 8.75},
	{"Speciaal Burger", "BURGERS", 6.75},
	{"Fish Burger", "BURGERS", 7.50},
	{"Kibbeling Burger", "BURGERS", 8.00},
	{"Chickenburger", "BURGERS", 7.00},
	{"Vegan Burger", "BURGERS", 7.00},
	{"Runder Burger", "BURGERS", 12.50},

	// VIS SNACKS
	{"Kleine Kibbeling + Saus", "VIS SNACKS", 6.50},
	{"Middel Kibbeling + Saus", "VIS SNACKS", 8.50},
	{"Grote Kibbeling + Saus", "VIS SNACKS", 10.50},
	{"Lekkerbek", "VIS SNACKS", 6.00},
	{"Lekkerbek + Saus", "VIS SNACKS", 6.85},
	{"Mosselen + Saus", "VIS SNACKS", 6.75},
	{"Visfriet + Saus", "VIS SNACKS", 5.50},
	{"Vismix + 2 Sauzen", "VIS SNACKS", 9.50},
	{"Torpedo Garnalen (5) + Chilisaus", "VIS SNACKS", 7.00},

	// KIP SNACKS
	{"Frikandel XXL", "KIP SNACKS", 3.85},
	{"Frikandel XXL Speciaal", "KIP SNACKS", 4.85},
	{"Kipnuggets (6)", "KIP SNACKS", 3.25},
	{"Kipcorn", "KIP SNACKS", 2.85},
	{"Chickenstrips (5)", "KIP SNACKS", 6.25},

	// VEGA/VEGAN SNACKS
	{"Groentekroket", "VEGA/VEGAN SNACKS", 2.25},
	{"Vega Frikandel", "VEGA/VEGAN SNACKS", 2.25},
	{"Kaassouffle", "VEGA/VEGAN SNACKS", 2.25},
	{"Vega Kroket", "VEGA/VEGAN SNACKS", 2.50},

	// HUISGEMAAKTE SNACKS
	{"Eierbal", "HUISGEMAAKTE SNACKS", 3.15},
	{"Varkenshaas Sate", "HUISGEMAAKTE SNACKS", 7.50},
	{"Shoarma + Pita + Knoflooksaus", "HUISGEMAAKTE SNACKS", 7.50},

	// STOKBROOD
	{"Stokbrood Gezond", "STOKBROOD", 7.25},
	{"Stokbrood Gerookte Zalm", "STOKBROOD", 9.25},
	{"Stokbrood Gerookte Zalmsnippers", "STOKBROOD", 8.25},
	{"Stokbrood Tonijnsalade", "STOKBROOD", 8.00},
	{"Stokbrood Krokante Kip", "STOKBROOD", 7.25},
	{"Stokbrood Surinaamse Kip", "STOKBROOD", 9.50},
	{"Stokbrood Pulled Pork", "STOKBROOD", 9.50},
	{"Stokbrood Warme Beenham", "STOKBROOD", 8.25},
	{"Stokbrood Carpaccio", "STOKBROOD", 12.50},

	// LUNCH tot 16.00 uur
	{"2 Kroketten met Brood", "LUNCH", 10.50},
	{"Uitsmijter Ham & Kaas", "LUNCH", 9.50},
	{"Bol de Luxe", "LUNCH", 9.75},

	// VOORGERECHT
	{"Vissoep", "VOORGERECHT", 6.50},
	{"Tomatensoep", "VOORGERECHT", 6.50},
	{"Gebakken Gamba's", "VOORGERECHT", 8.50},
	{"Nacho's", "VOORGERECHT", 8.50},
	{"Carpaccio", "VOORGERECHT", 12.50},

	// VIS PLATE
	{"Vis Plate Kibbeling", "VIS PLATE", 15.50},
	{"Vis Plate Lekkerbek", "VIS PLATE", 15.50},
	{"Vis Plate Vismix", "VIS PLATE", 17.50},
	{"Vis Maaltijdsalade Zalm", "VIS PLATE", 15.50},

	// VLEES PLATE
	{"Vlees Plate Rex Schnitzel", "VLEES PLATE", 16.50},
	{"Vlees Plate Varkenshaas Sate", "VLEES PLATE", 16.50},
	{"Vlees Plate Runderburger", "VLEES PLATE", 18.50},

	// VEGETARISCH PLATE
	{"Vega Plate Vega Sate", "VEGETARISCH PLATE", 17.50},

	// DESSERTS
	{"Vanille IJs", "DESSERTS", 5.25},
	{"Vanille IJs + Fruit", "DESSERTS", 7.25},
	{"Wentelteefje", "DESSERTS", 8.25},
	{"Kinder IJsje", "DESSERTS", 4.50},
	{"Schatkist", "DESSERTS", 3.50},

	// KOFFIE NA
	{"Irish Coffee", "KOFFIE NA", 7.00},
	{"Groninger Koffie", "KOFFIE NA", 7.00},

	// KIDS BOX
	{"Kidsbox", "KIDS BOX", 7.25},

	// EXTRA
	{"Rauwkost", "EXTRA", 3.25},
	{"Huzarensalade", "EXTRA", 3.75},
	{"Appelmoes", "EXTRA", 0.90},

	// SAUS (normaal)
	{"Frietsaus (Normaal)", "SAUS", 0.50},
	{"Brander Mayo (Normaal)", "SAUS", 0.75},
	{"Curry/Ketchup (Normaal)", "SAUS", 0.70},
	{"Mosterd (Normaal)", "SAUS", 0.40},
	{"Joppie/Jamballa (Normaal)", "SAUS", 0.75},
	{"Sate-/Oorlogsaus (Normaal)", "SAUS", 0.75},
	{"Speciaalsaus (Normaal)", "SAUS", 0.75},
	{"Knoflooksaus (Normaal)", "SAUS", 0.75},
	{"Remoulade-/Ravigotte (Normaal)", "SAUS", 0.85},

	// SAUS (bakje)
	{"Frietsaus (Bakje)", "SAUS", 1.00},
	{"Brander Mayo (Bakje)", "SAUS", 1.50},
	{"Curry/Ketchup (Bakje)", "SAUS", 1.40},
	{"Mosterd (Bakje)", "SAUS", 0.80},
	{"Joppie/Jamballa (Bakje)", "SAUS", 1.50},
	{"Sate-/Oorlogsaus (Bakje)", "SAUS", 1.50},
	{"Speciaalsaus (Bakje)", "SAUS", 1.50},
	{"Knoflooksaus (Bakje)", "SAUS", 1.50},
	{"Remoulade-/Ravigotte (Bakje)", "SAUS", 1.50},

	// SAUS (bij groot)
	{"Frietsaus (Bij groot)", "SAUS", 0.75},
	{"Brander Mayo (Bij groot)", "SAUS", 1.00},
	{"Curry/Ketchup (Bij groot)", "SAUS", 1.00},
	{"Mosterd (Bij groot)", "SAUS", 0.60},
	{"Joppie/Jamballa (Bij groot)", "SAUS", 1.00},
	{"Sate-/Oorlogsaus (Bij groot)", "SAUS", 1.00},
	{"Speciaalsaus (Bij groot)", "SAUS", 1.00},
	{"Knoflooksaus (Bij groot)", "SAUS", 1.00},
	{"Remoulade-/Ravigotte (Bij groot)", "SAUS", 1.10},

	// DRANKEN
	{"Monster Energy", "DRANKEN", 3.50},
	{"Monster Ultra White", "DRANKEN", 3.50},
	{"Monster Loco Mango", "DRANKEN", 3.50},
	{"Monster Energy Ultra Strawberry Dreams", "DRANKEN", 3.50},
}

// SeedMenu inserts the full reference catalog with freshly generated ids and
// returns the number of items inserted. It does not check whether the catalog
// is already populated; concurrent callers can both seed and end up with
// duplicates, matching the lazy seed-on-empty-read contract.
func SeedMenu(db *gorm.DB) (int, error) {
	items := make([]models.MenuItem, 0, len(ReferenceMenu))
	for _, entry := range ReferenceMenu {
		items = append(items, models.MenuItem{
			ID:       uuid.NewString(),
			Name:     entry.Name,
			Category: entry.Category,
			Price:    entry.Price,
		})
	}
	if err := db.Create(&items).Error; err != nil {
		return 0, err
	}
	return len(items), nil
}

// ReseedMenu wipes the catalog and seeds it fresh.
func ReseedMenu(db *gorm.DB) (int, error) {
	if err := db.Where("1 = 1").Delete(&models.MenuItem{}).Error; err != nil {
		return 0, err
	}
	return SeedMenu(db)
}
