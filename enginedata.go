package formatstyle

// Built-in calendar bundles for the locales shipped by default, staged from
// CLDR. Additional locales or overrides come in through bundle overlay files
// (BundleLoader) or BundleProvider.Register.

var builtinBundles = map[string]*CalendarBundle{
	"en":    &bundleEN,
	"en-GB": &bundleENGB,
	"es":    &bundleES,
	"fr":    &bundleFR,
	"de":    &bundleDE,
}

var bundleEN = CalendarBundle{
	Locale: "en",
	MonthsWide: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthsAbbrev: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	MonthsNarrow:   []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	WeekdaysWide:   []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdaysAbbrev: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	WeekdaysNarrow: []string{"S", "M", "T", "W", "T", "F", "S"},
	Eras:           []string{"BC", "AD"},
	ErasWide:       []string{"Before Christ", "Anno Domini"},
	DayPeriods:     []string{"AM", "PM"},
	QuartersAbbrev: []string{"Q1", "Q2", "Q3", "Q4"},
	QuartersWide:   []string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"},
	AvailableFormats: map[string]string{
		"yMd":        "M/d/y",
		"yMMd":       "MM/dd/y",
		"yMMMd":      "MMM d, y",
		"yMMMMd":     "MMMM d, y",
		"yMMMMEEEEd": "EEEE, MMMM d, y",
		"yMMM":       "MMM y",
		"yMMMM":      "MMMM y",
		"yM":         "M/y",
		"Md":         "M/d",
		"MMMd":       "MMM d",
		"MMMMd":      "MMMM d",
		"d":          "d",
		"y":          "y",
		"Gy":         "y G",
		"GyMMMd":     "MMM d, y G",
		"Hm":         "HH:mm",
		"Hms":        "HH:mm:ss",
		"ahm":        "h:mm a",
		"ahms":       "h:mm:ss a",
	},
	DayFirst:       false,
	TwelveHour:     true,
	NumericDateSep: "/",
	FirstWeekday:   1,
	MinDays:        1,
	Numbers: NumberSymbols{
		Decimal: ".", Group: ",", Minus: "-", Plus: "+", Percent: "%", Exponent: "E",
	},
	CurrencyBefore: true,
	CurrencySymbols: map[string]string{
		"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥", "CNY": "CN¥", "MXN": "MX$",
	},
	CurrencyNames: map[string]string{
		"USD": "US dollars", "EUR": "euros", "GBP": "British pounds", "JPY": "Japanese yen",
	},
	List: ListPatterns{
		Pair:   "{0} and {1}",
		Start:  "{0}, {1}",
		Middle: "{0}, {1}",
		End:    "{0}, and {1}",
	},
	Relative: map[string]RelativeVocab{
		"year": {
			Past: "{0} years ago", PastOne: "{0} year ago",
			Future: "in {0} years", FutureOne: "in {0} year",
			Named: map[int]string{-1: "last year", 0: "this year", 1: "next year"},
		},
		"month": {
			Past: "{0} months ago", PastOne: "{0} month ago",
			Future: "in {0} months", FutureOne: "in {0} month",
			Named: map[int]string{-1: "last month", 0: "this month", 1: "next month"},
		},
		"week": {
			Past: "{0} weeks ago", PastOne: "{0} week ago",
			Future: "in {0} weeks", FutureOne: "in {0} week",
			Named: map[int]string{-1: "last week", 0: "this week", 1: "next week"},
		},
		"day": {
			Past: "{0} days ago", PastOne: "{0} day ago",
			Future: "in {0} days", FutureOne: "in {0} day",
			Named: map[int]string{-1: "yesterday", 0: "today", 1: "tomorrow"},
		},
		"hour": {
			Past: "{0} hours ago", PastOne: "{0} hour ago",
			Future: "in {0} hours", FutureOne: "in {0} hour",
			Named: map[int]string{0: "this hour"},
		},
		"minute": {
			Past: "{0} minutes ago", PastOne: "{0} minute ago",
			Future: "in {0} minutes", FutureOne: "in {0} minute",
			Named: map[int]string{0: "this minute"},
		},
		"second": {
			Past: "{0} seconds ago", PastOne: "{0} second ago",
			Future: "in {0} seconds", FutureOne: "in {0} second",
			Named: map[int]string{0: "now"},
		},
	},
	DurationSkeletons: map[string]string{"hm": "h:mm", "hms": "h:mm:ss", "ms": "m:ss"},
	CompactSuffixes:   []string{"K", "M", "B", "T"},
	Units: map[string]UnitNames{
		"week":        {One: "week", Other: "weeks", Abbrev: "wk"},
		"day":         {One: "day", Other: "days", Abbrev: "day"},
		"hour":        {One: "hour", Other: "hours", Abbrev: "hr"},
		"minute":      {One: "minute", Other: "minutes", Abbrev: "min"},
		"second":      {One: "second", Other: "seconds", Abbrev: "sec"},
		"millisecond": {One: "millisecond", Other: "milliseconds", Abbrev: "ms"},
	},
}

// en-GB differs from en mostly in field order and hour cycle.
var bundleENGB = CalendarBundle{
	Locale: "en-GB",
	AvailableFormats: map[string]string{
		"yMd":        "dd/MM/y",
		"yMMd":       "dd/MM/y",
		"yMMMd":      "d MMM y",
		"yMMMMd":     "d MMMM y",
		"yMMMMEEEEd": "EEEE, d MMMM y",
		"Md":         "dd/MM",
		"MMMd":       "d MMM",
		"MMMMd":      "d MMMM",
	},
	DayFirst:       true,
	TwelveHour:     false,
	NumericDateSep: "/",
	FirstWeekday:   2,
	MinDays:        4,
	CurrencyBefore: true,
	CurrencySymbols: map[string]string{
		"USD": "US$", "EUR": "€", "GBP": "£", "JPY": "JP¥",
	},
}

var bundleES = CalendarBundle{
	Locale: "es",
	MonthsWide: []string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	MonthsAbbrev: []string{
		"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sept", "oct", "nov", "dic",
	},
	MonthsNarrow:   []string{"E", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	WeekdaysWide:   []string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	WeekdaysAbbrev: []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	WeekdaysNarrow: []string{"D", "L", "M", "X", "J", "V", "S"},
	Eras:           []string{"a. C.", "d. C."},
	ErasWide:       []string{"antes de Cristo", "después de Cristo"},
	DayPeriods:     []string{"a. m.", "p. m."},
	QuartersAbbrev: []string{"T1", "T2", "T3", "T4"},
	QuartersWide:   []string{"1.er trimestre", "2.º trimestre", "3.er trimestre", "4.º trimestre"},
	AvailableFormats: map[string]string{
		"yMd":        "d/M/y",
		"yMMd":       "dd/MM/y",
		"yMMMd":      "d MMM y",
		"yMMMMd":     "d 'de' MMMM 'de' y",
		"yMMMMEEEEd": "EEEE, d 'de' MMMM 'de' y",
		"yMMM":       "MMM y",
		"yMMMM":      "MMMM 'de' y",
		"Md":         "d/M",
		"MMMd":       "d MMM",
		"MMMMd":      "d 'de' MMMM",
		"Hm":         "H:mm",
		"Hms":        "H:mm:ss",
		"ahm":        "h:mm a",
		"ahms":       "h:mm:ss a",
	},
	DayFirst:       true,
	TwelveHour:     false,
	NumericDateSep: "/",
	FirstWeekday:   2,
	MinDays:        4,
	Numbers: NumberSymbols{
		Decimal: ",", Group: ".", Minus: "-", Plus: "+", Percent: " %", Exponent: "E",
	},
	CurrencySymbols: map[string]string{
		"USD": "US$", "EUR": "€", "GBP": "£", "JPY": "JP¥",
	},
	CurrencyNames: map[string]string{
		"USD": "dólares estadounidenses", "EUR": "euros", "GBP": "libras esterlinas",
	},
	List: ListPatterns{
		Pair:   "{0} y {1}",
		Start:  "{0}, {1}",
		Middle: "{0}, {1}",
		End:    "{0} y {1}",
	},
	Relative: map[string]RelativeVocab{
		"year": {
			Past: "hace {0} años", PastOne: "hace {0} año",
			Future: "dentro de {0} años", FutureOne: "dentro de {0} año",
			Named: map[int]string{-1: "el año pasado", 0: "este año", 1: "el próximo año"},
		},
		"month": {
			Past: "hace {0} meses", PastOne: "hace {0} mes",
			Future: "dentro de {0} meses", FutureOne: "dentro de {0} mes",
			Named: map[int]string{-1: "el mes pasado", 0: "este mes", 1: "el próximo mes"},
		},
		"week": {
			Past: "hace {0} semanas", PastOne: "hace {0} semana",
			Future: "dentro de {0} semanas", FutureOne: "dentro de {0} semana",
			Named: map[int]string{-1: "la semana pasada", 0: "esta semana", 1: "la próxima semana"},
		},
		"day": {
			Past: "hace {0} días", PastOne: "hace {0} día",
			Future: "dentro de {0} días", FutureOne: "dentro de {0} día",
			Named: map[int]string{-1: "ayer", 0: "hoy", 1: "mañana"},
		},
		"hour": {
			Past: "hace {0} horas", PastOne: "hace {0} hora",
			Future: "dentro de {0} horas", FutureOne: "dentro de {0} hora",
			Named: map[int]string{0: "esta hora"},
		},
		"minute": {
			Past: "hace {0} minutos", PastOne: "hace {0} minuto",
			Future: "dentro de {0} minutos", FutureOne: "dentro de {0} minuto",
			Named: map[int]string{0: "este minuto"},
		},
		"second": {
			Past: "hace {0} segundos", PastOne: "hace {0} segundo",
			Future: "dentro de {0} segundos", FutureOne: "dentro de {0} segundo",
			Named: map[int]string{0: "ahora"},
		},
	},
	DurationSkeletons: map[string]string{"hm": "h:mm", "hms": "h:mm:ss", "ms": "m:ss"},
	CompactSuffixes:   []string{"mil", "M", "mil M", "B"},
	Units: map[string]UnitNames{
		"week":        {One: "semana", Other: "semanas", Abbrev: "sem."},
		"day":         {One: "día", Other: "días", Abbrev: "d"},
		"hour":        {One: "hora", Other: "horas", Abbrev: "h"},
		"minute":      {One: "minuto", Other: "minutos", Abbrev: "min"},
		"second":      {One: "segundo", Other: "segundos", Abbrev: "s"},
		"millisecond": {One: "milisegundo", Other: "milisegundos", Abbrev: "ms"},
	},
}

var bundleFR = CalendarBundle{
	Locale: "fr",
	MonthsWide: []string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	MonthsAbbrev: []string{
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	},
	MonthsNarrow:   []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	WeekdaysWide:   []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	WeekdaysAbbrev: []string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	WeekdaysNarrow: []string{"D", "L", "M", "M", "J", "V", "S"},
	Eras:           []string{"av. J.-C.", "ap. J.-C."},
	ErasWide:       []string{"avant Jésus-Christ", "après Jésus-Christ"},
	DayPeriods:     []string{"AM", "PM"},
	QuartersAbbrev: []string{"T1", "T2", "T3", "T4"},
	QuartersWide:   []string{"1er trimestre", "2e trimestre", "3e trimestre", "4e trimestre"},
	AvailableFormats: map[string]string{
		"yMd":        "dd/MM/y",
		"yMMd":       "dd/MM/y",
		"yMMMd":      "d MMM y",
		"yMMMMd":     "d MMMM y",
		"yMMMMEEEEd": "EEEE d MMMM y",
		"yMMM":       "MMM y",
		"yMMMM":      "MMMM y",
		"Md":         "dd/MM",
		"MMMd":       "d MMM",
		"MMMMd":      "d MMMM",
		"Hm":         "HH:mm",
		"Hms":        "HH:mm:ss",
		"ahm":        "h:mm a",
		"ahms":       "h:mm:ss a",
	},
	DayFirst:       true,
	TwelveHour:     false,
	NumericDateSep: "/",
	FirstWeekday:   2,
	MinDays:        4,
	Numbers: NumberSymbols{
		Decimal: ",", Group: " ", Minus: "-", Plus: "+", Percent: " %", Exponent: "E",
	},
	CurrencySymbols: map[string]string{
		"USD": "$US", "EUR": "€", "GBP": "£GB", "JPY": "JPY",
	},
	CurrencyNames: map[string]string{
		"USD": "dollars des États-Unis", "EUR": "euros", "GBP": "livres sterling",
	},
	List: ListPatterns{
		Pair:   "{0} et {1}",
		Start:  "{0}, {1}",
		Middle: "{0}, {1}",
		End:    "{0} et {1}",
	},
	Relative: map[string]RelativeVocab{
		"year": {
			Past: "il y a {0} ans", PastOne: "il y a {0} an",
			Future: "dans {0} ans", FutureOne: "dans {0} an",
			Named: map[int]string{-1: "l'année dernière", 0: "cette année", 1: "l'année prochaine"},
		},
		"month": {
			Past: "il y a {0} mois", PastOne: "il y a {0} mois",
			Future: "dans {0} mois", FutureOne: "dans {0} mois",
			Named: map[int]string{-1: "le mois dernier", 0: "ce mois-ci", 1: "le mois prochain"},
		},
		"week": {
			Past: "il y a {0} semaines", PastOne: "il y a {0} semaine",
			Future: "dans {0} semaines", FutureOne: "dans {0} semaine",
			Named: map[int]string{-1: "la semaine dernière", 0: "cette semaine", 1: "la semaine prochaine"},
		},
		"day": {
			Past: "il y a {0} jours", PastOne: "il y a {0} jour",
			Future: "dans {0} jours", FutureOne: "dans {0} jour",
			Named: map[int]string{-1: "hier", 0: "aujourd'hui", 1: "demain"},
		},
		"hour": {
			Past: "il y a {0} heures", PastOne: "il y a {0} heure",
			Future: "dans {0} heures", FutureOne: "dans {0} heure",
			Named: map[int]string{0: "cette heure-ci"},
		},
		"minute": {
			Past: "il y a {0} minutes", PastOne: "il y a {0} minute",
			Future: "dans {0} minutes", FutureOne: "dans {0} minute",
			Named: map[int]string{0: "cette minute-ci"},
		},
		"second": {
			Past: "il y a {0} secondes", PastOne: "il y a {0} seconde",
			Future: "dans {0} secondes", FutureOne: "dans {0} seconde",
			Named: map[int]string{0: "maintenant"},
		},
	},
	DurationSkeletons: map[string]string{"hm": "h:mm", "hms": "h:mm:ss", "ms": "m:ss"},
	CompactSuffixes:   []string{"k", "M", "Md", "Bn"},
	Units: map[string]UnitNames{
		"week":        {One: "semaine", Other: "semaines", Abbrev: "sem."},
		"day":         {One: "jour", Other: "jours", Abbrev: "j"},
		"hour":        {One: "heure", Other: "heures", Abbrev: "h"},
		"minute":      {One: "minute", Other: "minutes", Abbrev: "min"},
		"second":      {One: "seconde", Other: "secondes", Abbrev: "s"},
		"millisecond": {One: "milliseconde", Other: "millisecondes", Abbrev: "ms"},
	},
}

var bundleDE = CalendarBundle{
	Locale: "de",
	MonthsWide: []string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	MonthsAbbrev: []string{
		"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
		"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
	},
	MonthsNarrow:   []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	WeekdaysWide:   []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	WeekdaysAbbrev: []string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
	WeekdaysNarrow: []string{"S", "M", "D", "M", "D", "F", "S"},
	Eras:           []string{"v. Chr.", "n. Chr."},
	ErasWide:       []string{"vor Christus", "nach Christus"},
	DayPeriods:     []string{"AM", "PM"},
	QuartersAbbrev: []string{"Q1", "Q2", "Q3", "Q4"},
	QuartersWide:   []string{"1. Quartal", "2. Quartal", "3. Quartal", "4. Quartal"},
	AvailableFormats: map[string]string{
		"yMd":        "d.M.y",
		"yMMd":       "dd.MM.y",
		"yMMMd":      "d. MMM y",
		"yMMMMd":     "d. MMMM y",
		"yMMMMEEEEd": "EEEE, d. MMMM y",
		"yMMM":       "MMM y",
		"yMMMM":      "MMMM y",
		"Md":         "d.M.",
		"MMMd":       "d. MMM",
		"MMMMd":      "d. MMMM",
		"Hm":         "HH:mm",
		"Hms":        "HH:mm:ss",
		"ahm":        "h:mm a",
		"ahms":       "h:mm:ss a",
	},
	DayFirst:       true,
	TwelveHour:     false,
	NumericDateSep: ".",
	FirstWeekday:   2,
	MinDays:        4,
	Numbers: NumberSymbols{
		Decimal: ",", Group: ".", Minus: "-", Plus: "+", Percent: " %", Exponent: "E",
	},
	CurrencySymbols: map[string]string{
		"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥",
	},
	CurrencyNames: map[string]string{
		"USD": "US-Dollar", "EUR": "Euro", "GBP": "Britische Pfund",
	},
	List: ListPatterns{
		Pair:   "{0} und {1}",
		Start:  "{0}, {1}",
		Middle: "{0}, {1}",
		End:    "{0} und {1}",
	},
	Relative: map[string]RelativeVocab{
		"year": {
			Past: "vor {0} Jahren", PastOne: "vor {0} Jahr",
			Future: "in {0} Jahren", FutureOne: "in {0} Jahr",
			Named: map[int]string{-1: "letztes Jahr", 0: "dieses Jahr", 1: "nächstes Jahr"},
		},
		"month": {
			Past: "vor {0} Monaten", PastOne: "vor {0} Monat",
			Future: "in {0} Monaten", FutureOne: "in {0} Monat",
			Named: map[int]string{-1: "letzten Monat", 0: "diesen Monat", 1: "nächsten Monat"},
		},
		"week": {
			Past: "vor {0} Wochen", PastOne: "vor {0} Woche",
			Future: "in {0} Wochen", FutureOne: "in {0} Woche",
			Named: map[int]string{-1: "letzte Woche", 0: "diese Woche", 1: "nächste Woche"},
		},
		"day": {
			Past: "vor {0} Tagen", PastOne: "vor {0} Tag",
			Future: "in {0} Tagen", FutureOne: "in {0} Tag",
			Named: map[int]string{-1: "gestern", 0: "heute", 1: "morgen"},
		},
		"hour": {
			Past: "vor {0} Stunden", PastOne: "vor {0} Stunde",
			Future: "in {0} Stunden", FutureOne: "in {0} Stunde",
			Named: map[int]string{0: "in dieser Stunde"},
		},
		"minute": {
			Past: "vor {0} Minuten", PastOne: "vor {0} Minute",
			Future: "in {0} Minuten", FutureOne: "in {0} Minute",
			Named: map[int]string{0: "in dieser Minute"},
		},
		"second": {
			Past: "vor {0} Sekunden", PastOne: "vor {0} Sekunde",
			Future: "in {0} Sekunden", FutureOne: "in {0} Sekunde",
			Named: map[int]string{0: "jetzt"},
		},
	},
	DurationSkeletons: map[string]string{"hm": "h:mm", "hms": "h:mm:ss", "ms": "m:ss"},
	CompactSuffixes:   []string{"Tsd.", "Mio.", "Mrd.", "Bio."},
	Units: map[string]UnitNames{
		"week":        {One: "Woche", Other: "Wochen", Abbrev: "Wo."},
		"day":         {One: "Tag", Other: "Tage", Abbrev: "Tg."},
		"hour":        {One: "Stunde", Other: "Stunden", Abbrev: "Std."},
		"minute":      {One: "Minute", Other: "Minuten", Abbrev: "Min."},
		"second":      {One: "Sekunde", Other: "Sekunden", Abbrev: "Sek."},
		"millisecond": {One: "Millisekunde", Other: "Millisekunden", Abbrev: "ms"},
	},
}
