package rankings

// fallbackList is used whenever a fetch is not accepted. It must stay at
// MaxNames entries.
var fallbackList = [MaxNames]string{
	"Scottie Scheffler",
	"Rory McIlroy",
	"Justin Rose",
	"Tommy Fleetwood",
	"Chris Gotterup",
	"Russell Henley",
	"J.J. Spaun",
	"Robert MacIntyre",
	"Ben Griffin",
	"Xander Schauffele",
	"Hideki Matsuyama",
	"Justin Thomas",
	"Harris English",
	"Sepp Straka",
	"Viktor Hovland",
	"Alex Noren",
	"Patrick Reed",
	"Keegan Bradley",
	"Collin Morikawa",
	"Ludvig Aberg",
	"Cameron Young",
	"Maverick McNealy",
	"Matt Fitzpatrick",
	"Ryan Gerard",
	"Tyrrell Hatton",
	"Si Woo Kim",
	"Aaron Rai",
	"Sam Burns",
	"Shane Lowry",
	"Patrick Cantlay",
	"Marco Penge",
	"Corey Conners",
	"Bryson DeChambeau",
	"Jason Day",
	"Andrew Novak",
	"Matt McCarty",
	"Michael Brennan",
	"Kristoffer Reitan",
	"Samuel Stevens",
	"Rasmus Hojgaard",
	"Michael Kim",
	"Kurt Kitayama",
	"Michael Thorbjornsen",
	"Pierceson Coody",
	"Sami Valimaki",
	"Brian Harman",
	"Max Greyserman",
	"Akshay Bhatia",
	"Ryan Fox",
	"Nicolai Hojgaard",
}

// Fallback returns a copy of the embedded top 50 list.
func Fallback() List {
	out := make(List, len(fallbackList))
	copy(out, fallbackList[:])
	return out
}
