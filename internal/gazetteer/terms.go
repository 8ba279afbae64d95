// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gazetteer

// nechakoTerms is the built-in Nechako Watershed gazetteer. Term lists come
// from the BC Geographical Names records for the watershed; accent variants
// (e.g. "François Lake") survive here on purpose and collapse through the
// canonical index.
var nechakoTerms = map[string][]string{
	"rivers": {
		"Nechako River", "Fraser River", "Stuart River", "Stellako River", "Endako River",
		"Nadina River", "Chelaslie River", "Cheslatta River", "Entiako River", "Kuzkwa River",
		"Necoslie River", "Nithi River", "Ocock River", "Sakeniche River", "Sinkut River",
		"St. Thomas River", "Tachie River", "Tetachuck River", "Tsilcoh River", "Driftwood River",
		"Chilako River", "Chezko River", "Blanchet River", "Middle River",
	},
	"creeks": {
		"Aird Creek", "Alf Creek", "Allen Creek", "Allin Creek", "Andrews Creek", "Angly Creek",
		"Ankwill Creek", "Arethusa Creek", "Aslin Creek", "Baker Creek", "Banguarel Creek",
		"Baptiste Creek", "Bates Creek", "Beach Creek", "Bearcub Creek", "Beaverdale Creek",
		"Beaverdam Creek", "Beaverley Creek", "Belisle Creek", "Belzile Creek", "Benoit Creek",
		"Big Bend Creek", "Bird Creek", "Bivouac Creek", "Blackburne Creek", "Bone Creek",
		"Breadalbane Creek", "Breeze Creek", "Brooks Creek", "Burnstead Creek", "Butcherflats Creek",
		"Butterfield Creek", "Cabin Creek", "Campbell Creek", "Camsell Creek", "Capoose Creek",
		"Chedakuz Creek", "Chehischic Creek", "Cheskwa Creek", "Chikamin Creek", "Chilco Creek",
		"Chillo Creek", "Chinohchey Creek", "Chowsunkut Creek", "Clarke Creek", "Clatlatiently Creek",
		"Clear Creek", "Cluculz Creek", "Coles Creek", "Colley Creek", "Comb Creek", "Cordella Creek",
		"Corkscrew Creek", "Cranberry Creek", "Cripple Creek", "Croft Creek", "Cummins Creek",
		"Cutoff Creek", "Dahl Creek", "Dan Miner Creek", "Davidson Creek", "Decker Creek", "Dodd Creek",
		"Dog Creek", "Dorman Creek", "Dust Creek", "Eagle Creek", "East Erhorn Creek",
		"East Moxley Creek", "East Murray Creek", "East Negaard Creek", "East Side Creek",
		"Eastern Creek", "Ed Creek", "Eden Creek", "Engen Creek", "Engstrom Creek", "Erhorn Creek",
		"Esker Creek", "Evans Creek", "Fawnie Creek", "Fifteen Creek", "Finger Creek", "Fleming Creek",
		"Foster Creek", "Four Mile Creek", "Frypan Creek", "Fyfe Creek", "Garvin Creek", "Gauvin Creek",
		"Gerow Creek", "Gesul Buhn Creek", "Gilbert Creek", "Gloyazikut Creek", "Goldie Creek",
		"Goodwin Creek", "Graham Creek", "Gravel Creek", "Greer Creek", "Gregg Creek", "Grostete Creek",
		"Guyishton Creek", "Halsey Creek", "Hatdudatehl Creek", "Hautête Creek", "Hawley Creek",
		"Henkel Creek", "Hogsback Creek", "Hudson Bay Creek", "Hulatt Creek", "Hutchison Creek",
		"Hyman Creek", "Inzana Creek", "Isaac Creek", "Jack Weekes Creek", "Janzê Creek",
		"Kasalka Creek", "Kazchek Creek", "Kec Creek", "Kellogg Creek", "Khai Creek", "Kinowsa Creek",
		"Kivi Creek", "Kleedlee Creek", "Klinsake Creek", "Kloch Creek", "Kluk Creek", "Knapp Creek",
		"Knight Creek", "Lakes Creek", "Laventie Creek", "Lavoie Creek", "Leduc Creek", "Leigh Creek",
		"Leo Creek", "Leona Creek", "Little Bobtail Creek", "Lovell Creek", "Lucas Creek",
		"Macdougall Creek", "MacIvor Creek", "Maclaing Creek", "Maltby Creek", "Mandalay Creek",
		"Marie Creek", "Martens Creek", "Mathews Creek", "McCuish Creek", "McDonald Creek",
		"McIntosh Creek", "McKay Creek", "McKenzie Creek", "McMillan Creek", "Michel Creek",
		"Micks Creek", "Millard Creek", "Moss Creek", "Moxley Creek", "Mudhole Creek", "Murray Creek",
		"Nahounli Creek", "Nancut Creek", "Nankuz Creek", "Natazutlo Creek", "Negaard Creek",
		"Neuco Creek", "Nielsp Creek", "Nine Mile Creek", "Nizik Creek", "Norman Creek",
		"North Stony Creek", "Ohr Creek", "Olie Creek", "O'Ne-ell Creek", "Ormond Creek",
		"Parkland Creek", "Parrott Creek", "Paula Creek", "Peace Creek", "Perry Creek", "Peta Creek",
		"Peter Aleck Creek", "Phillips Creek", "Pinchi Creek", "Pitka Creek", "Poplar Creek",
		"Powder House Creek", "Prairie Meadow Creek", "Preston Creek", "Puttah Creek", "Ramsay Creek",
		"Redmond Creek", "Relief Creek", "Rentoul Creek", "Rhine Creek", "Robertson Creek",
		"Rubyrock Creek", "Sam Ross Creek", "Sandifer Creek", "Sauls Creek", "Saxton Creek",
		"Schjelderup Creek", "Shelford Creek", "Sheraton Creek", "Shillestead Brook", "Short Creek",
		"Shotgun Creek", "Shovel Creek", "Sibola Creek", "Sidney Creek", "Sinta Creek", "Sitlika Creek",
		"Small Trout Creek", "Smith Creek", "Snodgrass Creek", "Sob Creek", "South Creek",
		"South Goldie Creek", "Sowchea Creek", "Specularite Creek", "Spencha Creek", "St. George Creek",
		"Stearns Creek", "Stern Creek", "Stony Creek", "Swanson Creek", "Sweden Creek", "Sweetnam Creek",
		"Tachick Creek", "Tachintelachick Creek", "Tagetochlain Creek", "Taginchil Creek",
		"Tahultzu Creek", "Takatoot Creek", "Takysie Creek", "Targe Creek", "Tarnezell Creek",
		"Taslincheko Creek", "Tatalaska Creek", "Tatalrose Creek", "Tatin Creek", "Tatsutnai Creek",
		"Tatuk Creek", "Tchesinkut Creek", "Tesla Creek", "Tezzeron Creek", "Tibbets Creek",
		"Tildesley Creek", "Tintagel Creek", "Tliti Creek", "Tlutlias Creek", "Totem Pole Creek",
		"Trankle Creek", "Tritt Creek", "Troitsa Creek", "Tsah Creek", "Tsitsutl Creek", "Tultsau Creek",
		"Ucausley Creek", "Uncha Creek", "Upper Moss Creek", "Van Decar Creek", "Van Lear Creek",
		"Van Tine Creek", "Wardrop Creek", "Webber Creek", "Wells Creek", "West Engen Creek",
		"West Tarnezell Creek", "Whitefish Creek", "Whiting Creek", "Wilhelmsen Creek", "Willowy Creek",
		"Wynkes Creek", "Zelkwas Creek",
	},
	"lakes": {
		"Angly Lake", "Anzus Lake", "Barton Lake", "Bednesti Lake", "Bentzi Lake", "Bickle Lake",
		"Binta Lake", "Bird Lake", "Bittern Lake", "Blanchet Lake", "Blanket Lakes", "Bodley Lake",
		"Bone Lake", "Boomerang Lake", "Borel Lake", "Breadalbane Lake", "Brewster Lakes",
		"Bungalow Lake", "Bunghun Whucho Lake", "Burns Lake", "Butterfield Lake", "Cabin Lake",
		"Cam McEwen Lake", "Capoose Lake", "Captain Harry Lake", "Carrier Lake", "Centre Lake",
		"Chaoborus Lake", "Chelaslie Arm", "Cheslatta Lake", "Cheztainya Lake", "Chief Louis Lake",
		"Chowsunkut Lake", "Cicuta Lake", "Circle Lake", "Circum Lake", "Clatlatiently Lake",
		"Cluculz Lake", "Cobb Lake", "Coles Lake", "Copley Lake", "Cory Lake", "Cow Lake",
		"Crystal Lake", "Cunningham Lake", "Dahl Lake", "Dan Miner Lake", "Darby Lake", "Dargie Lake",
		"Davidson Lake", "Dawson Lake", "Decker Lake", "Dem Lake", "Deserter Lake", "Dolphin Lake",
		"Dorman Lake", "Drift Lake", "Drywilliam Lake", "East Hautête Lake", "East HautÃªte Lake",
		"Elalie Lake", "Elliott Lake", "Emmett Lake", "Entiako Lake", "Enz Lake", "Euchu Reach",
		"Eulatazella Lake", "Eutsuk Lake", "Farbus Lake", "Fenton Lake", "Finger Lake", "Finnie Lake",
		"Fish Lake", "Flat Lake", "Fleming Lake", "Foster Lakes", "François Lake", "FranÃ§ois Lake",
		"Frank Lake", "Fraser Lake", "Friday Lake", "Fyfe Lake", "Gale Lake", "Gatcho Lake",
		"Getzuni Lake", "Ghitezli Lake", "Glatheli Lake", "Gluten Lake", "Goodrich Lake",
		"Goosefoot Lake", "Gordon Lake", "Guyishton Lake", "Hallett Lake", "Haney Lake", "Hanson Lake",
		"Harp Lake", "Hat Lake", "Hatdudatehl Lake", "Hautête Lake", "HautÃªte Lake", "Hay Lake",
		"Hewson Lake", "Hobson Lake", "Hogsback Lake", "Holy Cross Lake", "Home Lake", "Horseshoe Lake",
		"Hoult Lake", "Innes Lake", "Intata Reach", "Inzana Lake", "Isaac Lake", "Island Lake",
		"Jesson Lake", "Johnny Lake", "Johnson Lake", "Justine Lake", "Kalder Lake", "Karena Lake",
		"Kaykay Lake", "Kaza Lake", "Kazchek Lake", "Kenney Lake", "Kloch Lake", "Knapp Lake",
		"Knewstubb Lake", "Kuyakuz Lake", "Laidman Lake", "Laurie Lake", "Lavoie Lake", "Lena Lake",
		"Lindquist Lake", "Little Bobtail Lake", "Little Whitesail Lake", "Llgitiyuz Lake", "Long Lake",
		"Looncall Lake", "Lucas Lake", "Lumpy Lake", "Macdougall Lake", "Mackenzie Lake", "Majuba Lake",
		"Malaput Lake", "Margaret Lake", "Marie Lake", "McKelvey Lake", "McKnab Lake", "Michel Lake",
		"Milligan Lake", "Mink Lake", "Mollice Lake", "Moose Lake", "Morgan Lake", "Murdoch Lake",
		"Murray Lake", "Musclow Lake", "Nadina Lake", "Nadsilnich Lake", "Nahounli Lake",
		"Nakinilerak Lake", "Naltesby Lake", "Nanitsch Lake", "Nanna Lake", "Natalkuz Lake",
		"Natazutlo Lake", "Natowite Lake", "Needle Lake", "Nendatoo Lake", "Ness Lake", "Newcombe Lake",
		"Nizik Lake", "Norman Lake", "Nulki Lake", "Nutli Lake", "Ocock Lake", "Octopus Lake",
		"Olaf Lake", "Oona Lake", "Ootsa Lake", "Ootsanee Lake", "Ormond Lake", "Otterson Lake",
		"Owl Lake", "Paddle Lake", "Pam Lake", "Parrott Lakes", "Parrott Lake", "Peta Lake",
		"Picket Lake", "Pinchi Lake", "Pondosy Lake", "Redfish Lake", "Reid Lake", "Richardson Lake",
		"Rubyrock Lake", "Sabina Lake", "Sandifer Lake", "Sather Lake", "Saxton Lake", "Seel Lake",
		"Shelford Lake", "Shesta Lake", "Short Portage Lake", "Sinkut Lake", "Skinny Lake", "Skins Lake",
		"Smith Lake", "Snowflake Lake", "Spad Lake", "Specularite Lake", "Square Lake",
		"St. Thomas Lake", "Starret Lake", "Stern Lake", "Stuart Lake", "Surel Lake", "Sweeney Lake",
		"Tachick Lake", "Tagai Lake", "Tagetochlain Lake", "Taginchil Lake", "Tahtsa Lake",
		"Tahtsa Reach", "Tahultzu Lake", "Tahuntesko Lake", "Takatoot Lake", "Takla Lake",
		"Takysie Lake", "Targe Lake", "Tarnezell Lake", "Tasa Lake", "Tatalaska Lake", "Tatalrose Lake",
		"Tatelkuz Lake", "Tatin Lake", "Tatsadah Lake", "Tatuk Lake", "Tchesinkut Lake", "Tercer Lake",
		"Tesla Lake", "Tetachuck Lake", "Tezzeron Lake", "Thletelban Lake", "Thompson Lake",
		"Tlutlias Lake", "Tochcha Lake", "Tomas Lake", "Top Lake", "Trembleur Lake", "Triangle Lake",
		"Troitsa Lake", "Tsayakwacha Lake", "Tschick Lake", "Tsetoyank'ut Lake", "Tsichgass Lake",
		"Turff Lake", "Twinkle Lake", "Uduk Lake", "Uncha Lake", "Wahla Lake", "Wapoose Lake",
		"Webber Lake", "White Eye Lake", "Whitefish Lake", "Whitesail Lake", "Williamson Lake",
		"Willington Lake", "Wutak Lake", "Yatzutzin Lake", "Yellow Moose Lake",
	},
	"physiography": {
		"Nechako Plateau", "Quanchus Range", "Vital Range", "Interior Plateau", "Omineca Mountains",
		"Coast Mountains", "Takla Range", "Whitesail Range", "Cariboo Heart Range", "Chikamin Range",
		"Connelly Range", "Driftwood Range", "Fawnie Range", "Hazelton Mountains", "Henson Hills",
		"Hogem Ranges", "Holmes Ridge", "Interior System", "Kasalka Range", "Kitimat Ranges",
		"Mitchell Range", "Mosquito Hills", "Murray Ridge", "Naglico Hills", "Nechako Range",
		"Pattullo Range", "Sasklo Ridge", "Savory Ridge", "Shelford Hills", "Sibola Range",
		"Sitlika Range", "Skeena Mountains", "Tahtsa Ranges", "Tatuk Hills", "Tekaiziyis Ridge",
		"Telegraph Range", "Tochquonyalla Range", "Tsaytut Spur", "Western System", "Windfall Hills",
	},
	"populated_places": {
		"Vanderhoof", "Prince George", "Fort St. James", "Fraser Lake", "Burns Lake", "Bulkley House",
		"Cheslatta", "Clemretta", "Colleymount", "Danskin", "Decker Lake", "Dog Creek", "Endako",
		"Fort Fraser", "Francois Lake", "Grassy Plains", "Isle Pierre", "Leo Creek", "Mapes", "Marilla",
		"McDonalds Landing", "Middle River", "Miworth", "Mud River", "Nautley", "Noralee", "Nulki",
		"Ootsa Lake", "Pinchi", "Pinchi Lake", "Punchaw", "Reid Lake", "Shady Valley", "Sinkut River",
		"Skins Lake", "Southbank", "Sowchea 3", "Stellako", "Stony Creek", "Sunnyside", "Tachie",
		"Takla Landing", "Takysie Lake", "Tatalrose", "Tatla't East", "Tchesinkut Lake", "Telachick",
		"Tintagel", "Weneez", "Wet'suwet'en Village", "Wistaria", "Woyenne", "Yekooche",
	},
	"first_nations": {
		"Stellat'en", "Nee-Tahi-Buhn", "Lake Babine", "Yekooche", "Burns Lake", "Cheslatta",
		"Nadleh Whuten", "Nak'azdli", "Saik'uz", "Skin Tyee", "Takla Lake", "Tl'azt'en", "Wet'suwet'en",
		"Carrier Sekani", "Wet'suwet'en Nation", "Carrier Nation",
	},
	"protected_areas": {
		"Tweedsmuir Provincial Park", "Entiako Provincial Park", "Finger-Tatuk Provincial Park",
		"Cheslatta Falls Provincial Park", "Beaumont Provincial Park",
		"Babine Mountains Provincial Park",
	},
	"sub_watersheds": {
		"Chelaslie Arm", "Tahtsa Reach", "Intata Reach", "Euchu Reach", "Upper Nechako", "Lower Nechako",
		"Middle Nechako",
	},
	"watershed_terms": {
		"Nechako", "Nechako Watershed", "Nechako Basin", "Nechako River System", "Fraser River",
		"British Columbia", "BC Interior", "Central Interior",
	},
}

// nechakoPriorityTerms are the major water bodies whose presence alone
// nearly guarantees geographic relevance.
var nechakoPriorityTerms = []string{
	"Takla Lake", "Ootsa Lake", "Stuart Lake", "Francois Lake", "Fraser Lake", "Babine Lake",
	"Burns Lake", "Pinchi Lake", "Cheslatta Lake", "Knewstubb Lake", "Nechako River", "Stuart River",
	"Endako River", "Stellako River", "Nautley River", "Nadina River", "Cheslatta River",
	"Fraser River",
}
