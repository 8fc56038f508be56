package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// cityEntry 一个可匹配的城市词条
// 查找顺序由首次注册位置决定，重复注册的城市保留位置但更新归属的邦
type cityEntry struct {
	city  string // 小写城市名
	state string
	re    *regexp.Regexp
}

// Gazetteer 印度城市到邦的地名词典，进程内只读
type Gazetteer struct {
	entries []*cityEntry
	index   map[string]*cityEntry
}

// NewGazetteer 根据内置数据构建地名词典，所有匹配正则在构建时编译
func NewGazetteer() *Gazetteer {
	g := &Gazetteer{
		index: make(map[string]*cityEntry),
	}
	for _, sc := range indianCitiesByState {
		for _, city := range sc.cities {
			g.register(city, sc.state)
		}
	}
	return g
}

func (g *Gazetteer) register(city, state string) {
	key := strings.ToLower(city)
	if existing, ok := g.index[key]; ok {
		// 同名城市以最后一次注册的邦为准，但保持原有查找位置
		existing.state = state
		return
	}
	entry := &cityEntry{
		city:  key,
		state: state,
		re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `\b`),
	}
	g.entries = append(g.entries, entry)
	g.index[key] = entry
}

// LookupLine 在单行文本中按注册顺序查找第一个命中的城市
// 返回格式化的 "City, State"，未命中时返回空串
func (g *Gazetteer) LookupLine(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, entry := range g.entries {
		if entry.re.MatchString(lower) {
			return titleCase(entry.city) + ", " + entry.state, true
		}
	}
	return "", false
}

// titleCase 将每个单词的首字母大写，其余小写
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevCased {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevCased = true
		} else {
			b.WriteRune(r)
			prevCased = false
		}
	}
	return b.String()
}

type stateCities struct {
	state  string
	cities []string
}

// indianCitiesByState 按邦组织的印度城市表，顺序决定查找优先级
var indianCitiesByState = []stateCities{
	{"Karnataka", []string{"Bangalore", "Bengaluru", "Mysore", "Mysuru", "Hubli", "Hubballi", "Dharwad", "Hospet",
		"Mangalore", "Mangaluru", "Belgaum", "Belagavi", "Davanagere", "Davangere",
		"Bellary", "Ballari", "Gulbarga", "Kalaburagi", "Bijapur", "Vijayapura", "Shimoga", "Shivamogga",
		"Tumkur", "Tumakuru", "Raichur", "Bidar", "Hassan", "Udupi", "Chitradurga", "Bagalkot", "Gadag", "Koppal"}},

	{"Maharashtra", []string{"Mumbai", "Pune", "Nagpur", "Thane", "Nashik", "Aurangabad", "Solapur",
		"Kolhapur", "Amravati", "Navi Mumbai", "Sangli", "Satara", "Ratnagiri", "Akola",
		"Ahmednagar", "Jalgaon", "Dhule", "Nanded", "Latur", "Chandrapur", "Parbhani", "Yavatmal",
		"Buldhana", "Jalna", "Beed", "Osmanabad", "Hingoli", "Washim", "Gadchiroli", "Wardha"}},

	{"Tamil Nadu", []string{"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Trichy", "Salem",
		"Tirunelveli", "Tiruppur", "Erode", "Vellore", "Thanjavur", "Dindigul", "Kanchipuram",
		"Cuddalore", "Thoothukudi", "Tuticorin", "Karur", "Namakkal", "Virudhunagar", "Krishnagiri",
		"Tiruvannamalai", "Nagapattinam", "Theni", "Perambalur", "Ariyalur", "Sivaganga", "Ramanathapuram"}},

	{"Kerala", []string{"Thiruvananthapuram", "Trivandrum", "Kochi", "Cochin", "Kozhikode", "Calicut",
		"Thrissur", "Trichur", "Kollam", "Quilon", "Palakkad", "Palghat", "Kannur", "Cannanore",
		"Alappuzha", "Alleppey", "Malappuram", "Pathanamthitta", "Kottayam", "Idukki", "Kasaragod", "Wayanad"}},

	{"Andhra Pradesh", []string{"Visakhapatnam", "Vizag", "Vijayawada", "Guntur", "Nellore", "Kurnool", "Nandyal",
		"Rajahmundry", "Tirupati", "Eluru", "Ongole", "Anantapur", "Kakinada",
		"Kadapa", "Cuddapah", "Chittoor", "Srikakulam", "Vizianagaram", "Prakasam", "Parvathipuram Manyam"}},

	{"Telangana", []string{"Hyderabad", "Secunderabad", "Warangal", "Nizamabad", "Karimnagar", "Khammam",
		"Ramagundam", "Mahbubnagar", "Nalgonda", "Adilabad", "Suryapet",
		"Siddipet", "Medak", "Sangareddy", "Kamareddy", "Vikarabad", "Jagitial", "Peddapalli",
		"Jangaon", "Bhadradri Kothagudem", "Nagarkurnool", "Wanaparthy", "Mahabubabad", "Mancherial"}},

	{"Delhi", []string{"Delhi", "New Delhi", "South Delhi", "North Delhi", "East Delhi", "West Delhi",
		"Central Delhi", "North West Delhi", "South West Delhi", "North East Delhi", "Shahdara", "South East Delhi"}},

	{"Gujarat", []string{"Ahmedabad", "Surat", "Vadodara", "Baroda", "Rajkot", "Bhavnagar", "Jamnagar",
		"Gandhinagar", "Junagadh", "Gandhidham", "Anand", "Navsari", "Morbi", "Nadiad",
		"Kutch", "Mehsana", "Bharuch", "Valsad", "Porbandar", "Patan", "Amreli", "Dahod",
		"Sabarkantha", "Surendranagar", "Banaskantha", "Tapi", "Kheda", "Botad"}},

	{"Uttar Pradesh", []string{"Lucknow", "Kanpur", "Agra", "Varanasi", "Kashi", "Prayagraj", "Allahabad", "Gorakhpur",
		"Ghaziabad", "Meerut", "Noida", "Bareilly", "Aligarh", "Moradabad", "Saharanpur",
		"Jhansi", "Mathura", "Ayodhya", "Faizabad", "Firozabad", "Muzaffarnagar", "Sultanpur",
		"Mirzapur", "Azamgarh", "Bijnor", "Sitapur", "Hardoi", "Jaunpur", "Rampur", "Unnao",
		"Rae Bareli", "Barabanki", "Etawah", "Bulandshahr", "Amroha", "Ghazipur"}},

	{"West Bengal", []string{"Kolkata", "Calcutta", "Howrah", "Durgapur", "Asansol", "Siliguri",
		"Bardhaman", "Burdwan", "Malda", "Kharagpur", "Haldia", "Darjeeling",
		"Jalpaiguri", "Cooch Behar", "Bankura", "Birbhum", "Purulia", "Nadia", "Hooghly",
		"North 24 Parganas", "South 24 Parganas", "Murshidabad", "Paschim Medinipur", "Purba Medinipur"}},

	{"Rajasthan", []string{"Jaipur", "Jodhpur", "Udaipur", "Kota", "Bikaner", "Ajmer", "Bhilwara",
		"Alwar", "Sikar", "Bharatpur", "Sri Ganganagar", "Pali", "Chittorgarh",
		"Nagaur", "Banswara", "Bundi", "Tonk", "Jhunjhunu", "Hanumangarh", "Dausa",
		"Jhalawar", "Dungarpur", "Sawai Madhopur", "Churu", "Dholpur", "Jalore", "Baran", "Pratapgarh"}},

	{"Punjab", []string{"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda", "Mohali",
		"SAS Nagar", "Hoshiarpur", "Pathankot", "Moga", "Firozpur", "Phagwara",
		"Gurdaspur", "Kapurthala", "Sangrur", "Fatehgarh Sahib", "Faridkot", "Muktsar",
		"Mansa", "Rupnagar", "Ropar", "Barnala", "Nawanshahr", "Tarn Taran", "Malerkotla"}},

	{"Haryana", []string{"Gurgaon", "Gurugram", "Faridabad", "Ambala", "Panipat", "Rohtak",
		"Hisar", "Karnal", "Sonipat", "Panchkula", "Yamunanagar", "Bhiwani",
		"Sirsa", "Kurukshetra", "Rewari", "Palwal", "Fatehabad", "Jhajjar", "Kaithal",
		"Jind", "Mahendragarh", "Nuh", "Mewat", "Charkhi Dadri"}},

	{"Madhya Pradesh", []string{"Indore", "Bhopal", "Jabalpur", "Gwalior", "Ujjain", "Sagar",
		"Ratlam", "Satna", "Rewa", "Dewas", "Khandwa", "Chhatarpur",
		"Vidisha", "Morena", "Chhindwara", "Guna", "Shivpuri", "Mandsaur",
		"Neemuch", "Dhar", "Khargone", "Hoshangabad", "Katni", "Bhind",
		"Betul", "Narsinghpur", "Damoh", "Shahdol", "Shajapur", "Burhanpur"}},

	{"Bihar", []string{"Patna", "Gaya", "Muzaffarpur", "Bhagalpur", "Darbhanga", "Purnia",
		"Arrah", "Begusarai", "Chhapra", "Katihar", "Munger", "Saharsa",
		"Bettiah", "Motihari", "Samastipur", "Sitamarhi", "Madhubani", "Hajipur",
		"Araria", "Kishanganj", "Madhepura", "Jehanabad", "Nawada", "Buxar", "Siwan",
		"Aurangabad", "Jamui", "Nalanda", "Supaul", "Banka", "Lakhisarai"}},

	{"Odisha", []string{"Bhubaneswar", "Cuttack", "Rourkela", "Berhampur", "Sambalpur",
		"Puri", "Balasore", "Bhadrak", "Baripada", "Jharsuguda", "Angul",
		"Balangir", "Bargarh", "Jeypore", "Kendrapara", "Koraput", "Sundargarh",
		"Rayagada", "Dhenkanal", "Paradip", "Jagatsinghpur", "Jajpur", "Kendujhar", "Keonjhar"}},

	{"Assam", []string{"Guwahati", "Dibrugarh", "Silchar", "Jorhat", "Tezpur", "Nagaon",
		"Tinsukia", "Karimganj", "Hailakandi", "Sivasagar", "Golaghat",
		"Diphu", "Dhubri", "Bongaigaon", "North Lakhimpur", "Mangaldoi", "Nalbari",
		"Barpeta", "Kokrajhar", "Goalpara", "Dhemaji", "Majuli", "Hamren", "Hojai"}},

	{"Jharkhand", []string{"Ranchi", "Jamshedpur", "Dhanbad", "Bokaro", "Hazaribagh",
		"Deoghar", "Giridih", "Ramgarh", "Dumka", "Chas", "Phusro",
		"Garhwa", "Godda", "Koderma", "Chaibasa", "Lohardaga", "Pakur",
		"Sahebganj", "Latehar", "Simdega", "Khunti", "Gumla", "Jamtara", "Chatra"}},

	{"Chhattisgarh", []string{"Raipur", "Bhilai", "Bilaspur", "Korba", "Durg",
		"Rajnandgaon", "Jagdalpur", "Ambikapur", "Mahasamund", "Dhamtari",
		"Raigarh", "Janjgir", "Kanker", "Bemetara", "Kondagaon", "Balod",
		"Sukma", "Balrampur", "Dantewada", "Baloda Bazar", "Bijapur", "Mungeli",
		"Surajpur", "Gariaband", "Narayanpur", "Kabirdham", "Kawardha"}},

	{"Uttarakhand", []string{"Dehradun", "Haridwar", "Roorkee", "Haldwani", "Rudrapur",
		"Kashipur", "Rishikesh", "Nainital", "Mussoorie", "Pithoragarh",
		"Almora", "Srinagar", "Kotdwar", "Tehri", "Champawat", "Roorkee",
		"Uttarkashi", "Bageshwar", "Chamoli", "Rudraprayag"}},

	{"Himachal Pradesh", []string{"Shimla", "Dharamshala", "Mandi", "Solan", "Palampur",
		"Kullu", "Baddi", "Nahan", "Kangra", "Bilaspur", "Hamirpur",
		"Una", "Chamba", "Kinnaur", "Lahaul and Spiti", "Sirmaur", "Keylong"}},

	{"Goa", []string{"Panaji", "Panjim", "Margao", "Vasco da Gama", "Vasco", "Mapusa",
		"Ponda", "Bicholim", "Curchorem", "Cuncolim", "Canacona",
		"Pernem", "Quepem", "Sanguem", "Sanquelim", "Valpoi", "Calangute", "Candolim"}},

	{"Jammu and Kashmir", []string{"Srinagar", "Jammu", "Anantnag", "Baramulla", "Udhampur",
		"Kathua", "Sopore", "Kupwara", "Pulwama", "Poonch", "Rajouri",
		"Budgam", "Bandipore", "Ganderbal", "Kulgam", "Kishtwar", "Ramban",
		"Reasi", "Doda", "Samba", "Shopian"}},

	{"Ladakh", []string{"Leh", "Kargil", "Zanskar", "Nubra", "Drass", "Khalatse", "Alchi", "Diskit",
		"Hanle", "Nyoma", "Chushul", "Durbuk", "Pangong", "Khaltse", "Sankoo"}},

	{"Arunachal Pradesh", []string{"Itanagar", "Naharlagun", "Pasighat", "Tawang", "Ziro", "Bomdila", "Aalo",
		"Tezu", "Namsai", "Roing", "Changlang", "Khonsa", "Seppa", "Daporijo", "Yingkiong",
		"Anini", "Koloriang", "Hawai", "Longding"}},

	{"Manipur", []string{"Imphal", "Thoubal", "Kakching", "Ukhrul", "Chandel", "Churachandpur", "Senapati",
		"Bishnupur", "Tamenglong", "Jiribam", "Kangpokpi", "Tengnoupal", "Pherzawl", "Noney",
		"Kamjong"}},

	{"Meghalaya", []string{"Shillong", "Tura", "Jowai", "Nongstoin", "Williamnagar", "Baghmara", "Resubelpara",
		"Ampati", "Khliehriat", "Mawkyrwat", "Nongpoh", "Mairang", "Dadenggre"}},

	{"Mizoram", []string{"Aizawl", "Lunglei", "Saiha", "Champhai", "Kolasib", "Serchhip", "Mamit", "Lawngtlai",
		"Khawzawl", "Saitual", "Hnahthial"}},

	{"Nagaland", []string{"Kohima", "Dimapur", "Mokokchung", "Tuensang", "Wokha", "Zunheboto", "Mon", "Phek",
		"Kiphire", "Longleng", "Peren", "Noklak"}},

	{"Sikkim", []string{"Gangtok", "Namchi", "Jorethang", "Gyalshing", "Mangan", "Rangpo", "Singtam", "Ravangla",
		"Soreng", "Pakyong"}},

	{"Tripura", []string{"Agartala", "Udaipur", "Dharmanagar", "Kailasahar", "Belonia", "Ambassa", "Khowai",
		"Teliamura", "Sabroom", "Santirbazar", "Kamalpur", "Kumarghat"}},

	{"Andaman and Nicobar Islands", []string{"Port Blair", "Mayabunder", "Diglipur", "Rangat", "Little Andaman",
		"Car Nicobar", "Campbell Bay", "Havelock Island", "Neil Island", "Kamorta"}},

	{"Chandigarh", []string{"Chandigarh", "Mani Majra", "Attawa", "Daria", "Hallomajra", "Maloya", "Palsora", "Kajheri"}},

	{"Dadra and Nagar Haveli and Daman and Diu", []string{"Silvassa", "Daman", "Diu", "Naroli", "Vapi", "Amli",
		"Kachigam", "Moti Daman", "Nani Daman", "Dunetha"}},

	{"Lakshadweep", []string{"Kavaratti", "Agatti", "Amini", "Andrott", "Bangaram", "Bitra", "Chetlat", "Kadmat",
		"Kalpeni", "Kiltan", "Minicoy"}},

	{"Puducherry", []string{"Puducherry", "Pondicherry", "Karaikal", "Yanam", "Mahe", "Ozhukarai", "Villianur",
		"Ariyankuppam", "Bahour", "Mannadipet"}},
}
