package classify

// responses holds the prewritten advice text per topic and language.
// Every topic carries an "en" entry; Respond falls back to it when the
// requested language is missing.
var responses = map[string]map[string]string{
	"fever": {
		"en": "For fever: Take adequate rest, stay hydrated with plenty of fluids, use cool compresses. If fever exceeds 102°F or persists for more than 3 days, consult a doctor immediately.",
		"hi": "बुखार के लिए: पर्याप्त आराम लें, पानी और तरल पदार्थों से हाइड्रेटेड रहें, ठंडी पट्टी का उपयोग करें। यदि बुखार 102°F से अधिक हो या 3 दिनों से अधिक बना रहे तो तुरंत डॉक्टर से संपर्क करें।",
		"or": "ଜ୍ବର ପାଇଁ: ଯଥେଷ୍ଟ ବିଶ୍ରାମ ନିଅନ୍ତୁ, ପାଣି ଏବଂ ତରଳ ପଦାର୍ଥ ପିଅନ୍ତୁ, ଥଣ୍ଡା ସେକ ବ୍ୟବହାର କରନ୍ତୁ। ଯଦି ଜ୍ବର 102°F ରୁ ଅଧିକ ହୁଏ କିମ୍ବା 3 ଦିନରୁ ଅଧିକ ରହେ ତେବେ ତୁରନ୍ତ ଡାକ୍ତରଙ୍କ ସହିତ ଯୋଗାଯୋଗ କରନ୍ତୁ।",
	},
	"headache": {
		"en": "For headache: Rest in a quiet, dark room. Apply cold or warm compress to head or neck. Stay hydrated. If severe or persistent, consult a healthcare provider.",
		"hi": "सिरदर्द के लिए: शांत, अंधेरे कमरे में आराम करें। सिर या गर्दन पर ठंडी या गर्म पट्टी लगाएं। हाइड्रेटेड रहें। यदि गंभीर या लगातार हो तो स्वास्थ्य सेवा प्रदाता से सलाह लें।",
		"or": "ମାଥା ବଥା ପାଇଁ: ଶାନ୍ତ, ଅନ୍ଧାର କୋଠରୀରେ ବିଶ୍ରାମ ନିଅନ୍ତୁ। ମୁଣ୍ଡ କିମ୍ବା ବେକରେ ଥଣ୍ଡା କିମ୍ବା ଗରମ ସେକ ଲଗାନ୍ତୁ। ହାଇଡ୍ରେଟେଡ୍ ରୁହନ୍ତୁ।",
	},
	"cough": {
		"en": "For cough: Drink warm fluids like water with honey, avoid cold drinks, and rest your voice. If the cough lasts more than 2 weeks or comes with blood or high fever, see a doctor.",
		"hi": "खांसी के लिए: शहद के साथ गर्म पानी जैसे गर्म तरल पदार्थ पिएं, ठंडे पेय से बचें और आवाज को आराम दें। यदि खांसी 2 सप्ताह से अधिक रहे या खून या तेज बुखार के साथ हो तो डॉक्टर को दिखाएं।",
		"or": "କାଶ ପାଇଁ: ମହୁ ସହିତ ଗରମ ପାଣି ଭଳି ଗରମ ତରଳ ପଦାର୍ଥ ପିଅନ୍ତୁ, ଥଣ୍ଡା ପାନୀୟରୁ ଦୂରେଇ ରୁହନ୍ତୁ। ଯଦି କାଶ 2 ସପ୍ତାହରୁ ଅଧିକ ରହେ ତେବେ ଡାକ୍ତରଙ୍କୁ ଦେଖାନ୍ତୁ।",
	},
	"stomach_pain": {
		"en": "For stomach pain: Eat light, bland food, sip clean water, and avoid spicy or oily meals. If the pain is severe, lasts more than a day, or comes with vomiting or fever, visit a health centre.",
		"hi": "पेट दर्द के लिए: हल्का, सादा भोजन करें, साफ पानी पिएं और मसालेदार या तैलीय भोजन से बचें। यदि दर्द तेज हो, एक दिन से अधिक रहे, या उल्टी या बुखार के साथ हो तो स्वास्थ्य केंद्र जाएं।",
		"or": "ପେଟ ଯନ୍ତ୍ରଣା ପାଇଁ: ହାଲୁକା ଖାଦ୍ୟ ଖାଆନ୍ତୁ, ସଫା ପାଣି ପିଅନ୍ତୁ ଏବଂ ମସଲାଯୁକ୍ତ ଖାଦ୍ୟରୁ ଦୂରେଇ ରୁହନ୍ତୁ। ଯଦି ଯନ୍ତ୍ରଣା ଅଧିକ ହୁଏ କିମ୍ବା ଗୋଟିଏ ଦିନରୁ ଅଧିକ ରହେ ତେବେ ସ୍ୱାସ୍ଥ୍ୟ କେନ୍ଦ୍ରକୁ ଯାଆନ୍ତୁ।",
	},
	"pregnancy": {
		"en": "For pregnancy care: Register at your nearest health centre, attend all antenatal checkups, take iron and folic acid tablets, and eat a balanced diet. Contact your ASHA worker for support.",
		"hi": "गर्भावस्था देखभाल के लिए: अपने निकटतम स्वास्थ्य केंद्र में पंजीकरण कराएं, सभी प्रसव पूर्व जांच कराएं, आयरन और फोलिक एसिड की गोलियां लें और संतुलित आहार लें। सहायता के लिए अपनी आशा कार्यकर्ता से संपर्क करें।",
		"or": "ଗର୍ଭାବସ୍ଥା ଯତ୍ନ ପାଇଁ: ନିକଟସ୍ଥ ସ୍ୱାସ୍ଥ୍ୟ କେନ୍ଦ୍ରରେ ପଞ୍ଜୀକରଣ କରନ୍ତୁ, ସମସ୍ତ ଗର୍ଭକାଳୀନ ଯାଞ୍ଚ କରାନ୍ତୁ ଏବଂ ସନ୍ତୁଳିତ ଖାଦ୍ୟ ଖାଆନ୍ତୁ। ସାହାଯ୍ୟ ପାଇଁ ଆଶା କର୍ମୀଙ୍କ ସହିତ ଯୋଗାଯୋଗ କରନ୍ତୁ।",
	},
	"vaccination": {
		"en": "For vaccination: Follow the immunization schedule at your nearest health centre. Routine vaccines protect against measles, polio, tetanus and more. Keep the vaccination card safe and bring it to every visit.",
		"hi": "टीकाकरण के लिए: अपने निकटतम स्वास्थ्य केंद्र पर टीकाकरण कार्यक्रम का पालन करें। नियमित टीके खसरा, पोलियो, टेटनस आदि से बचाते हैं। टीकाकरण कार्ड संभाल कर रखें और हर बार साथ लाएं।",
		"or": "ଟୀକାକରଣ ପାଇଁ: ନିକଟସ୍ଥ ସ୍ୱାସ୍ଥ୍ୟ କେନ୍ଦ୍ରରେ ଟୀକାକରଣ କାର୍ଯ୍ୟସୂଚୀ ଅନୁସରଣ କରନ୍ତୁ। ନିୟମିତ ଟୀକା ମିଳିମିଳା, ପୋଲିଓ, ଟେଟାନସରୁ ରକ୍ଷା କରେ। ଟୀକାକରଣ କାର୍ଡ ସୁରକ୍ଷିତ ରଖନ୍ତୁ।",
	},
	GeneralTopic: {
		"en": "I'm here to help with health-related questions. Please describe your symptoms or ask about health topics like vaccination, pregnancy care, or common illnesses.",
		"hi": "मैं स्वास्थ्य संबंधी प्रश्नों में मदद के लिए यहाँ हूँ। कृपया अपने लक्षणों का वर्णन करें या टीकाकरण, गर्भावस्था देखभाल, या सामान्य बीमारियों के बारे में पूछें।",
		"or": "ମୁଁ ସ୍ୱାସ୍ଥ୍ୟ ସମ୍ବନ୍ଧୀୟ ପ୍ରଶ୍ନରେ ସାହାଯ୍ୟ ପାଇଁ ଏଠାରେ ଅଛି। ଦୟାକରି ଆପଣଙ୍କର ଲକ୍ଷଣ ବର୍ଣ୍ଣନା କରନ୍ତୁ କିମ୍ବା ଟୀକାକରଣ, ଗର୍ଭାବସ୍ଥା ଯତ୍ନ, କିମ୍ବା ସାଧାରଣ ରୋଗ ବିଷୟରେ ପଚାରନ୍ତୁ।",
	},
}
