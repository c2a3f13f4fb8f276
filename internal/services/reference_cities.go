package services

// referenceCity rows back the nearest-city heuristic. Distances feed the
// weighting against population; the list covers the region the mobile client
// drives through most.
type referenceCity struct {
	Name       string
	State      string
	Lat        float64
	Lon        float64
	Population int
}

var referenceCities = []referenceCity{
	{"Nashville", "Tennessee", 36.1627, -86.7816, 689447},
	{"Memphis", "Tennessee", 35.1495, -90.0490, 633104},
	{"Knoxville", "Tennessee", 35.9606, -83.9207, 190740},
	{"Chattanooga", "Tennessee", 35.0456, -85.3097, 181099},
	{"Lebanon", "Tennessee", 36.2081, -86.2911, 38431},
	{"Smithville", "Tennessee", 35.9606, -85.8142, 5027},
	{"St. Louis", "Missouri", 38.6270, -90.1994, 301578},
	{"Springfield", "Missouri", 37.2090, -93.2923, 169176},
	{"Kansas City", "Missouri", 39.0997, -94.5786, 508090},
	{"Louisville", "Kentucky", 38.2527, -85.7585, 633045},
	{"Bowling Green", "Kentucky", 36.9685, -86.4808, 72294},
	{"Little Rock", "Arkansas", 34.7465, -92.2896, 202591},
	{"Jonesboro", "Arkansas", 35.8423, -90.7043, 78576},
	{"Birmingham", "Alabama", 33.5186, -86.8104, 200733},
	{"Huntsville", "Alabama", 34.7304, -86.5861, 215006},
	{"Atlanta", "Georgia", 33.7490, -84.3880, 498715},
	{"Jackson", "Mississippi", 32.2988, -90.1848, 153701},
	{"Tupelo", "Mississippi", 34.2576, -88.7034, 37923},
	{"Indianapolis", "Indiana", 39.7684, -86.1581, 887642},
	{"Evansville", "Indiana", 37.9716, -87.5711, 118414},
}
