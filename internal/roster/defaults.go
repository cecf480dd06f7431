package roster

// defaultRoster is the built-in star allow-list, keyed by the full team
// names the odds feed uses. Player ids follow the stats provider's
// numbering. Operators can override the whole list with a YAML file.
var defaultRoster = map[string][]Player{
	"Atlanta Hawks": {
		{Name: "Trae Young", ID: 479},
		{Name: "Jalen Johnson", ID: 50749},
	},
	"Boston Celtics": {
		{Name: "Jayson Tatum", ID: 434},
		{Name: "Jaylen Brown", ID: 70},
	},
	"Brooklyn Nets": {
		{Name: "Cam Thomas", ID: 50753},
		{Name: "Nic Claxton", ID: 3442},
	},
	"Charlotte Hornets": {
		{Name: "LaMelo Ball", ID: 17896046},
		{Name: "Brandon Miller", ID: 38017708},
	},
	"Chicago Bulls": {
		{Name: "Coby White", ID: 3439},
		{Name: "Nikola Vucevic", ID: 472},
	},
	"Cleveland Cavaliers": {
		{Name: "Donovan Mitchell", ID: 325},
		{Name: "Darius Garland", ID: 3411},
		{Name: "Evan Mobley", ID: 50751},
	},
	"Dallas Mavericks": {
		{Name: "Anthony Davis", ID: 117},
		{Name: "Kyrie Irving", ID: 274},
	},
	"Denver Nuggets": {
		{Name: "Nikola Jokic", ID: 246},
		{Name: "Jamal Murray", ID: 332},
	},
	"Detroit Pistons": {
		{Name: "Cade Cunningham", ID: 50750},
		{Name: "Jalen Duren", ID: 17896067},
	},
	"Golden State Warriors": {
		{Name: "Stephen Curry", ID: 115},
		{Name: "Jimmy Butler", ID: 79},
	},
	"Houston Rockets": {
		{Name: "Kevin Durant", ID: 140},
		{Name: "Alperen Sengun", ID: 50754},
	},
	"Indiana Pacers": {
		{Name: "Tyrese Haliburton", ID: 17896048},
		{Name: "Pascal Siakam", ID: 416},
	},
	"Los Angeles Clippers": {
		{Name: "Kawhi Leonard", ID: 278},
		{Name: "James Harden", ID: 192},
	},
	"Los Angeles Lakers": {
		{Name: "LeBron James", ID: 237},
		{Name: "Luka Doncic", ID: 132},
	},
	"Memphis Grizzlies": {
		{Name: "Ja Morant", ID: 3421},
		{Name: "Jaren Jackson Jr.", ID: 3418},
	},
	"Miami Heat": {
		{Name: "Bam Adebayo", ID: 3},
		{Name: "Tyler Herro", ID: 3413},
	},
	"Milwaukee Bucks": {
		{Name: "Giannis Antetokounmpo", ID: 15},
		{Name: "Kyle Kuzma", ID: 283},
	},
	"Minnesota Timberwolves": {
		{Name: "Anthony Edwards", ID: 17896002},
		{Name: "Julius Randle", ID: 381},
		{Name: "Rudy Gobert", ID: 172},
	},
	"New Orleans Pelicans": {
		{Name: "Zion Williamson", ID: 3409},
		{Name: "Trey Murphy III", ID: 50757},
	},
	"New York Knicks": {
		{Name: "Jalen Brunson", ID: 73},
		{Name: "Karl-Anthony Towns", ID: 443},
	},
	"Oklahoma City Thunder": {
		{Name: "Shai Gilgeous-Alexander", ID: 3428},
		{Name: "Chet Holmgren", ID: 17896069},
	},
	"Orlando Magic": {
		{Name: "Paolo Banchero", ID: 17896064},
		{Name: "Franz Wagner", ID: 50758},
	},
	"Philadelphia 76ers": {
		{Name: "Joel Embiid", ID: 145},
		{Name: "Tyrese Maxey", ID: 17896004},
	},
	"Phoenix Suns": {
		{Name: "Devin Booker", ID: 58},
		{Name: "Jalen Green", ID: 50755},
	},
	"Portland Trail Blazers": {
		{Name: "Damian Lillard", ID: 278953},
		{Name: "Scoot Henderson", ID: 38017703},
	},
	"Sacramento Kings": {
		{Name: "Domantas Sabonis", ID: 393},
		{Name: "DeMar DeRozan", ID: 125},
		{Name: "Zach LaVine", ID: 294},
	},
	"San Antonio Spurs": {
		{Name: "Victor Wembanyama", ID: 38017711},
		{Name: "De'Aaron Fox", ID: 158},
	},
	"Toronto Raptors": {
		{Name: "Scottie Barnes", ID: 50752},
		{Name: "RJ Barrett", ID: 3410},
	},
	"Utah Jazz": {
		{Name: "Lauri Markkanen", ID: 302},
		{Name: "Walker Kessler", ID: 17896072},
	},
	"Washington Wizards": {
		{Name: "Alex Sarr", ID: 56677913},
		{Name: "Bilal Coulibaly", ID: 38017705},
	},
}
