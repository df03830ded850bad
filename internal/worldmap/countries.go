package worldmap

type country struct {
	Name     string
	Lon, Lat float64
}

// Countries returns the plot country table: two-letter plot code to
// display name. The returned map is a fresh copy each call.
func Countries() map[string]string {
	out := make(map[string]string, len(countries))
	for code, c := range countries {
		out[code] = c.Name
	}
	return out
}

// The world the map knows how to draw. Coordinates are rough centroids on
// an equirectangular canvas, good enough to place a bubble inside each
// country's outline.
var countries = map[string]country{
	"ad": {"Andorra", 1.5, 42.5},
	"ae": {"United Arab Emirates", 54.0, 24.0},
	"af": {"Afghanistan", 66.0, 33.9},
	"al": {"Albania", 20.0, 41.2},
	"am": {"Armenia", 45.0, 40.1},
	"ao": {"Angola", 17.9, -11.2},
	"ar": {"Argentina", -63.6, -38.4},
	"at": {"Austria", 14.6, 47.5},
	"au": {"Australia", 133.8, -25.3},
	"az": {"Azerbaijan", 47.6, 40.1},
	"ba": {"Bosnia and Herzegovina", 17.7, 43.9},
	"bb": {"Barbados", -59.5, 13.2},
	"bd": {"Bangladesh", 90.4, 23.7},
	"be": {"Belgium", 4.5, 50.5},
	"bf": {"Burkina Faso", -1.6, 12.2},
	"bg": {"Bulgaria", 25.5, 42.7},
	"bh": {"Bahrain", 50.6, 26.0},
	"bi": {"Burundi", 29.9, -3.4},
	"bj": {"Benin", 2.3, 9.3},
	"bn": {"Brunei Darussalam", 114.7, 4.5},
	"bo": {"Bolivia", -63.6, -16.3},
	"br": {"Brazil", -51.9, -14.2},
	"bt": {"Bhutan", 90.4, 27.5},
	"bw": {"Botswana", 24.7, -22.3},
	"by": {"Belarus", 27.9, 53.7},
	"bz": {"Belize", -88.5, 17.2},
	"ca": {"Canada", -106.3, 56.1},
	"cd": {"Congo, Dem. Rep.", 21.8, -4.0},
	"cf": {"Central African Republic", 20.9, 6.6},
	"cg": {"Congo, Rep.", 15.8, -0.2},
	"ch": {"Switzerland", 8.2, 46.8},
	"ci": {"Cote d'Ivoire", -5.5, 7.5},
	"cl": {"Chile", -71.5, -35.7},
	"cm": {"Cameroon", 12.4, 7.4},
	"cn": {"China", 104.2, 35.9},
	"co": {"Colombia", -74.3, 4.6},
	"cr": {"Costa Rica", -84.0, 9.7},
	"cu": {"Cuba", -77.8, 21.5},
	"cv": {"Cabo Verde", -24.0, 16.0},
	"cy": {"Cyprus", 33.4, 35.1},
	"cz": {"Czechia", 15.5, 49.8},
	"de": {"Germany", 10.5, 51.2},
	"dj": {"Djibouti", 42.6, 11.8},
	"dk": {"Denmark", 9.5, 56.3},
	"do": {"Dominican Republic", -70.2, 18.7},
	"dz": {"Algeria", 1.7, 28.0},
	"ec": {"Ecuador", -78.2, -1.8},
	"ee": {"Estonia", 25.0, 58.6},
	"eg": {"Egypt", 30.8, 26.8},
	"er": {"Eritrea", 39.8, 15.2},
	"es": {"Spain", -3.7, 40.5},
	"et": {"Ethiopia", 40.5, 9.1},
	"fi": {"Finland", 25.7, 61.9},
	"fj": {"Fiji", 178.1, -17.7},
	"fr": {"France", 2.2, 46.2},
	"ga": {"Gabon", 11.6, -0.8},
	"gb": {"United Kingdom", -3.4, 55.4},
	"gd": {"Grenada", -61.7, 12.1},
	"ge": {"Georgia", 43.4, 42.3},
	"gh": {"Ghana", -1.0, 7.9},
	"gl": {"Greenland", -42.6, 71.7},
	"gm": {"Gambia, The", -15.3, 13.4},
	"gn": {"Guinea", -9.7, 9.9},
	"gq": {"Equatorial Guinea", 10.3, 1.6},
	"gr": {"Greece", 21.8, 39.1},
	"gt": {"Guatemala", -90.2, 15.8},
	"gw": {"Guinea-Bissau", -15.2, 11.8},
	"gy": {"Guyana", -58.9, 4.9},
	"hk": {"Hong Kong SAR, China", 114.1, 22.4},
	"hn": {"Honduras", -86.2, 15.2},
	"hr": {"Croatia", 15.2, 45.1},
	"ht": {"Haiti", -72.3, 18.9},
	"hu": {"Hungary", 19.5, 47.2},
	"id": {"Indonesia", 113.9, -0.8},
	"ie": {"Ireland", -8.2, 53.4},
	"il": {"Israel", 34.9, 31.0},
	"in": {"India", 78.9, 20.6},
	"iq": {"Iraq", 43.7, 33.2},
	"ir": {"Iran, Islamic Rep.", 53.7, 32.4},
	"is": {"Iceland", -19.0, 65.0},
	"it": {"Italy", 12.6, 42.5},
	"jm": {"Jamaica", -77.3, 18.1},
	"jo": {"Jordan", 36.2, 30.6},
	"jp": {"Japan", 138.3, 36.2},
	"ke": {"Kenya", 37.9, -0.0},
	"kg": {"Kyrgyz Republic", 74.8, 41.2},
	"kh": {"Cambodia", 105.0, 12.6},
	"km": {"Comoros", 43.9, -11.6},
	"kn": {"St. Kitts and Nevis", -62.8, 17.4},
	"kp": {"Korea, Dem. People's Rep.", 127.5, 40.3},
	"kr": {"Korea, Rep.", 127.8, 35.9},
	"kw": {"Kuwait", 47.5, 29.3},
	"kz": {"Kazakhstan", 66.9, 48.0},
	"la": {"Lao PDR", 102.5, 19.9},
	"lb": {"Lebanon", 35.9, 33.9},
	"lc": {"St. Lucia", -61.0, 13.9},
	"li": {"Liechtenstein", 9.6, 47.2},
	"lk": {"Sri Lanka", 80.8, 7.9},
	"lr": {"Liberia", -9.4, 6.4},
	"ls": {"Lesotho", 28.2, -29.6},
	"lt": {"Lithuania", 23.9, 55.2},
	"lu": {"Luxembourg", 6.1, 49.8},
	"lv": {"Latvia", 24.6, 56.9},
	"ly": {"Libya", 17.2, 26.3},
	"ma": {"Morocco", -7.1, 31.8},
	"mc": {"Monaco", 7.4, 43.7},
	"md": {"Moldova", 28.4, 47.4},
	"me": {"Montenegro", 19.4, 42.7},
	"mg": {"Madagascar", 46.9, -18.8},
	"mk": {"North Macedonia", 21.7, 41.6},
	"ml": {"Mali", -4.0, 17.6},
	"mm": {"Myanmar", 96.0, 21.9},
	"mn": {"Mongolia", 103.8, 46.9},
	"mo": {"Macao SAR, China", 113.5, 22.2},
	"mr": {"Mauritania", -10.9, 21.0},
	"mt": {"Malta", 14.4, 35.9},
	"mu": {"Mauritius", 57.6, -20.3},
	"mv": {"Maldives", 73.2, 3.2},
	"mw": {"Malawi", 34.3, -13.3},
	"mx": {"Mexico", -102.6, 23.6},
	"my": {"Malaysia", 101.9, 4.2},
	"mz": {"Mozambique", 35.5, -18.7},
	"na": {"Namibia", 18.5, -22.9},
	"ne": {"Niger", 8.1, 17.6},
	"ng": {"Nigeria", 8.7, 9.1},
	"ni": {"Nicaragua", -85.2, 12.9},
	"nl": {"Netherlands", 5.3, 52.1},
	"no": {"Norway", 8.5, 60.5},
	"np": {"Nepal", 84.1, 28.4},
	"nz": {"New Zealand", 174.9, -40.9},
	"om": {"Oman", 56.0, 21.5},
	"pa": {"Panama", -80.8, 8.5},
	"pe": {"Peru", -75.0, -9.2},
	"pg": {"Papua New Guinea", 144.0, -6.3},
	"ph": {"Philippines", 121.8, 12.9},
	"pk": {"Pakistan", 69.3, 30.4},
	"pl": {"Poland", 19.1, 51.9},
	"pt": {"Portugal", -8.2, 39.4},
	"py": {"Paraguay", -58.4, -23.4},
	"qa": {"Qatar", 51.2, 25.4},
	"ro": {"Romania", 25.0, 45.9},
	"rs": {"Serbia", 21.0, 44.0},
	"ru": {"Russian Federation", 90.0, 60.0},
	"rw": {"Rwanda", 29.9, -1.9},
	"sa": {"Saudi Arabia", 45.1, 23.9},
	"sb": {"Solomon Islands", 160.2, -9.6},
	"sc": {"Seychelles", 55.5, -4.7},
	"sd": {"Sudan", 30.2, 12.9},
	"se": {"Sweden", 15.6, 62.2},
	"sg": {"Singapore", 103.8, 1.4},
	"si": {"Slovenia", 14.8, 46.2},
	"sk": {"Slovak Republic", 19.7, 48.7},
	"sl": {"Sierra Leone", -11.8, 8.5},
	"sm": {"San Marino", 12.4, 43.9},
	"sn": {"Senegal", -14.5, 14.5},
	"so": {"Somalia", 46.2, 5.2},
	"sr": {"Suriname", -56.0, 4.0},
	"st": {"Sao Tome and Principe", 6.6, 0.2},
	"sv": {"El Salvador", -88.9, 13.8},
	"sy": {"Syrian Arab Republic", 39.0, 34.8},
	"sz": {"Eswatini", 31.5, -26.5},
	"td": {"Chad", 18.7, 15.5},
	"tg": {"Togo", 0.8, 8.6},
	"th": {"Thailand", 101.0, 15.9},
	"tj": {"Tajikistan", 71.3, 38.9},
	"tl": {"Timor-Leste", 125.7, -8.9},
	"tm": {"Turkmenistan", 59.6, 38.9},
	"tn": {"Tunisia", 9.5, 33.9},
	"tr": {"Turkiye", 35.2, 39.0},
	"tt": {"Trinidad and Tobago", -61.2, 10.7},
	"tw": {"Taiwan", 121.0, 23.7},
	"tz": {"Tanzania", 34.9, -6.4},
	"ua": {"Ukraine", 31.2, 48.4},
	"ug": {"Uganda", 32.3, 1.4},
	"us": {"United States", -95.7, 37.1},
	"uy": {"Uruguay", -55.8, -32.5},
	"uz": {"Uzbekistan", 64.6, 41.4},
	"va": {"Holy See", 12.5, 41.9},
	"vc": {"St. Vincent and the Grenadines", -61.2, 13.3},
	"ve": {"Venezuela, RB", -66.6, 6.4},
	"vn": {"Vietnam", 108.3, 14.1},
	"vu": {"Vanuatu", 166.9, -15.4},
	"ws": {"Samoa", -172.1, -13.8},
	"ye": {"Yemen, Rep.", 48.5, 15.6},
	"za": {"South Africa", 22.9, -30.6},
	"zm": {"Zambia", 27.8, -13.1},
	"zw": {"Zimbabwe", 29.2, -19.0},
}
