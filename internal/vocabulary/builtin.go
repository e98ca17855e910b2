package vocabulary

// Builtin returns the classroom sign catalog shipped with the runtime.
// Deployments extend or override it with a vocabulary file.
func Builtin() []Entry {
	return []Entry{
		// Greetings
		{Word: "hello", Category: "greetings", Synonyms: []string{"hi", "hey", "greetings"}, Description: "Wave hand near face", AnimationType: "css", AnimationData: map[string]string{"class": "wave-animation"}},
		{Word: "goodbye", Category: "greetings", Synonyms: []string{"bye", "farewell", "see you", "later"}, Description: "Wave hand away from body"},
		{Word: "thank you", Category: "greetings", Synonyms: []string{"thanks", "appreciate", "grateful"}, Description: "Hand moves from chin outward"},
		{Word: "please", Category: "greetings", Synonyms: []string{"kindly"}, Description: "Circular motion on chest"},
		{Word: "sorry", Category: "greetings", Synonyms: []string{"apologize", "apologies", "my bad"}, Description: "Fist circles on chest"},
		{Word: "good morning", Category: "greetings", Synonyms: []string{"morning"}, Description: "Point to sky then wave"},
		{Word: "good afternoon", Category: "greetings", Synonyms: []string{"afternoon"}, Description: "Point to sun then wave"},
		{Word: "good evening", Category: "greetings", Synonyms: []string{"evening"}, Description: "Point to horizon then wave"},
		{Word: "good night", Category: "greetings", Synonyms: []string{"night", "sleep well"}, Description: "Rest head on hands"},
		{Word: "nice to meet you", Category: "greetings", Synonyms: []string{"pleased to meet you"}, Description: "Shake hands gesture"},
		{Word: "how are you", Category: "greetings", Synonyms: []string{"how do you do", "how's it going"}, Description: "Point to self then others"},
		{Word: "i'm fine", Category: "greetings", Synonyms: []string{"i'm good", "i'm well", "i'm okay"}, Description: "Thumbs up with smile gesture"},
		{Word: "have a good day", Category: "greetings", Synonyms: []string{"have a nice day"}, Description: "Wave with both hands"},

		// Responses
		{Word: "yes", Category: "responses", Synonyms: []string{"yeah", "yep", "correct", "right", "affirmative", "okay", "ok"}, Description: "Fist nods up and down"},
		{Word: "no", Category: "responses", Synonyms: []string{"nope", "negative", "wrong", "incorrect"}, Description: "Two fingers close to thumb"},
		{Word: "maybe", Category: "responses", Synonyms: []string{"perhaps", "possibly", "might"}, Description: "Hands alternate up and down"},
		{Word: "understand", Category: "responses", Synonyms: []string{"get it", "comprehend", "got it", "clear", "makes sense"}, Description: "Index finger flicks up near forehead"},
		{Word: "confused", Category: "responses", Synonyms: []string{"don't understand", "unclear", "lost", "puzzled"}, Description: "Curved fingers alternate near forehead"},
		{Word: "i know", Category: "responses", Synonyms: []string{"i understand"}, Description: "Tap forehead with index finger"},
		{Word: "i don't know", Category: "responses", Synonyms: []string{"not sure", "uncertain"}, Description: "Shrug shoulders with palms up"},
		{Word: "wait", Category: "responses", Synonyms: []string{"hold on", "just a moment"}, Description: "Palm facing out, fingers spread"},

		// Actions
		{Word: "question", Category: "actions", Synonyms: []string{"ask", "query", "inquire"}, Description: "Index finger draws question mark"},
		{Word: "answer", Category: "actions", Synonyms: []string{"reply", "respond", "response"}, Description: "Index fingers point outward from mouth"},
		{Word: "help", Category: "actions", Synonyms: []string{"assist", "aid", "support"}, Description: "Thumbs up on flat palm, lift up"},
		{Word: "repeat", Category: "actions", Synonyms: []string{"again", "say again", "one more time"}, Description: "Curved hand flips over"},
		{Word: "stop", Category: "actions", Synonyms: []string{"hold", "pause", "halt"}, Description: "Flat hand strikes palm"},
		{Word: "start", Category: "actions", Synonyms: []string{"begin", "go", "commence"}, Description: "Index finger twists between fingers"},
		{Word: "finish", Category: "actions", Synonyms: []string{"done", "complete", "end", "finished", "over"}, Description: "Open hands flip outward"},
		{Word: "read", Category: "actions", Synonyms: []string{"reading"}, Description: "Two fingers scan across palm"},
		{Word: "write", Category: "actions", Synonyms: []string{"writing", "note"}, Description: "Pinched fingers write on palm"},
		{Word: "listen", Category: "actions", Synonyms: []string{"hear", "hearing", "listening"}, Description: "Cupped hand to ear"},
		{Word: "speak", Category: "actions", Synonyms: []string{"talk", "say", "tell", "talking", "speaking"}, Description: "Four fingers tap from chin"},
		{Word: "think", Category: "actions", Synonyms: []string{"thinking", "consider", "thought"}, Description: "Index finger circles at temple"},
		{Word: "learn", Category: "actions", Synonyms: []string{"study", "learning", "studying"}, Description: "Fingers pull from palm to forehead"},
		{Word: "teach", Category: "actions", Synonyms: []string{"teaching", "instruct", "explain"}, Description: "Both hands pull from forehead outward"},
		{Word: "work", Category: "actions", Synonyms: []string{"working", "job"}, Description: "Fists alternate pounding"},
		{Word: "play", Category: "actions", Synonyms: []string{"playing", "fun"}, Description: "Fingers wiggle like playing"},
		{Word: "eat", Category: "actions", Synonyms: []string{"eating"}, Description: "Hand to mouth"},
		{Word: "drink", Category: "actions", Synonyms: []string{"drinking"}, Description: "Tilt hand to mouth"},
		{Word: "sleep", Category: "actions", Synonyms: []string{"sleeping", "rest"}, Description: "Rest head on hands"},
		{Word: "walk", Category: "actions", Synonyms: []string{"walking"}, Description: "Two fingers walk on other hand"},
		{Word: "run", Category: "actions", Synonyms: []string{"running"}, Description: "Fingers run quickly"},

		// People
		{Word: "teacher", Category: "nouns", Synonyms: []string{"instructor", "professor", "educator"}, Description: "Teach sign plus person marker"},
		{Word: "student", Category: "nouns", Synonyms: []string{"learner", "pupil"}, Description: "Learn sign plus person marker"},
		{Word: "person", Category: "nouns", Synonyms: []string{"people", "individual", "someone"}, Description: "Point to person"},
		{Word: "man", Category: "nouns", Synonyms: []string{"male", "guy", "boy"}, Description: "Flat hand strikes forehead"},
		{Word: "woman", Category: "nouns", Synonyms: []string{"female", "lady", "girl"}, Description: "Brush hair back"},
		{Word: "child", Category: "nouns", Synonyms: []string{"kid", "children", "baby"}, Description: "Small height gesture"},
		{Word: "friend", Category: "nouns", Synonyms: []string{"buddy", "pal"}, Description: "Hook fingers together"},
		{Word: "family", Category: "nouns", Synonyms: []string{"relatives"}, Description: "F hands circle together"},
		{Word: "mother", Category: "nouns", Synonyms: []string{"mom", "mama"}, Description: "Thumb brushes chin"},
		{Word: "father", Category: "nouns", Synonyms: []string{"dad", "papa"}, Description: "F hand strikes forehead"},
		{Word: "brother", Category: "nouns", Synonyms: []string{"bro"}, Description: "B hand strikes forehead"},
		{Word: "sister", Category: "nouns", Synonyms: []string{"sis"}, Description: "S hand brushes chin"},

		// Places
		{Word: "home", Category: "nouns", Synonyms: []string{"house"}, Description: "Fingers form roof over head"},
		{Word: "school", Category: "nouns", Synonyms: []string{"classroom"}, Description: "C hands circle outward"},
		{Word: "class", Category: "nouns", Synonyms: []string{"course", "lesson"}, Description: "C hands circle outward"},
		{Word: "bathroom", Category: "nouns", Synonyms: []string{"restroom", "toilet"}, Description: "T hand waves"},
		{Word: "kitchen", Category: "nouns", Synonyms: []string{"cook"}, Description: "Stir motion"},
		{Word: "bedroom", Category: "nouns", Synonyms: []string{"bed"}, Description: "Rest head on hands"},

		// Objects
		{Word: "book", Category: "nouns", Synonyms: []string{"textbook"}, Description: "Palms open like book"},
		{Word: "paper", Category: "nouns", Synonyms: []string{"document", "sheet"}, Description: "Palms brush together twice"},
		{Word: "test", Category: "nouns", Synonyms: []string{"exam", "quiz", "examination"}, Description: "X hands pull down and open"},
		{Word: "homework", Category: "nouns", Synonyms: []string{"assignment"}, Description: "Home sign plus work sign"},
		{Word: "computer", Category: "nouns", Synonyms: []string{"laptop", "pc"}, Description: "Type on keyboard"},
		{Word: "phone", Category: "nouns", Synonyms: []string{"telephone", "cell phone"}, Description: "Hand to ear like phone"},
		{Word: "table", Category: "nouns", Synonyms: []string{"desk"}, Description: "Flat hand horizontal"},
		{Word: "chair", Category: "nouns", Synonyms: []string{"seat"}, Description: "Sit down gesture"},
		{Word: "door", Category: "nouns", Synonyms: []string{"entrance"}, Description: "Open door motion"},
		{Word: "window", Category: "nouns", Synonyms: []string{"glass"}, Description: "Square window frame"},
		{Word: "water", Category: "nouns", Description: "W hand waves"},
		{Word: "food", Category: "nouns", Description: "Hand to mouth"},
		{Word: "money", Category: "nouns", Synonyms: []string{"cash", "dollar"}, Description: "Rub thumb and fingers"},
		{Word: "time", Category: "nouns", Synonyms: []string{"clock", "hour"}, Description: "Point to watch"},
		{Word: "day", Category: "nouns", Synonyms: []string{"today"}, Description: "Circle overhead"},
		{Word: "night", Category: "nouns", Synonyms: []string{"dark"}, Description: "Rest head on hands"},

		// Descriptors
		{Word: "good", Category: "descriptors", Synonyms: []string{"great", "nice", "well", "excellent", "fine"}, Description: "Flat hand from chin to palm"},
		{Word: "bad", Category: "descriptors", Synonyms: []string{"poor", "terrible", "awful"}, Description: "Flat hand from chin flips down"},
		{Word: "easy", Category: "descriptors", Synonyms: []string{"simple", "not hard"}, Description: "Curved fingers brush upward"},
		{Word: "hard", Category: "descriptors", Synonyms: []string{"difficult", "tough", "challenging"}, Description: "Bent V hands knock together"},
		{Word: "fast", Category: "descriptors", Synonyms: []string{"quick", "quickly", "rapid", "speed"}, Description: "L hands pull back quickly"},
		{Word: "slow", Category: "descriptors", Synonyms: []string{"slowly", "slower"}, Description: "Hand drags up back of hand"},
		{Word: "important", Category: "descriptors", Synonyms: []string{"significant", "key", "critical", "essential"}, Description: "F hands circle up to center"},
		{Word: "big", Category: "descriptors", Synonyms: []string{"large", "huge"}, Description: "Hands spread apart"},
		{Word: "small", Category: "descriptors", Synonyms: []string{"little", "tiny"}, Description: "Pinch fingers close"},
		{Word: "hot", Category: "descriptors", Synonyms: []string{"warm", "heat"}, Description: "Wipe brow"},
		{Word: "cold", Category: "descriptors", Synonyms: []string{"cool", "freezing"}, Description: "Shiver motion"},
		{Word: "happy", Category: "descriptors", Synonyms: []string{"glad", "joyful"}, Description: "Smile with hands"},
		{Word: "sad", Category: "descriptors", Synonyms: []string{"unhappy"}, Description: "Frown with hands"},
		{Word: "tired", Category: "descriptors", Synonyms: []string{"sleepy", "exhausted"}, Description: "Rest head on hands"},
		{Word: "hungry", Category: "descriptors", Synonyms: []string{"starving"}, Description: "Hand to stomach"},
		{Word: "thirsty", Category: "descriptors", Synonyms: []string{"dry"}, Description: "Hand to mouth like drinking"},

		// Questions
		{Word: "what", Category: "questions", Description: "Index finger brushes across palm"},
		{Word: "where", Category: "questions", Description: "Index finger waves side to side"},
		{Word: "when", Category: "questions", Description: "Index finger circles then touches"},
		{Word: "why", Category: "questions", Description: "Fingers touch forehead, pull to Y"},
		{Word: "how", Category: "questions", Description: "Knuckles roll outward and open"},
		{Word: "who", Category: "questions", Description: "Index finger circles at lips"},
		{Word: "which", Category: "questions", Synonyms: []string{"what one"}, Description: "Point between options"},

		// Numbers
		{Word: "one", Category: "numbers", Synonyms: []string{"1"}, Description: "Index finger up"},
		{Word: "two", Category: "numbers", Synonyms: []string{"2"}, Description: "Index and middle fingers up"},
		{Word: "three", Category: "numbers", Synonyms: []string{"3"}, Description: "Three fingers up"},
		{Word: "four", Category: "numbers", Synonyms: []string{"4"}, Description: "Four fingers up"},
		{Word: "five", Category: "numbers", Synonyms: []string{"5"}, Description: "Five fingers up"},
		{Word: "ten", Category: "numbers", Synonyms: []string{"10"}, Description: "Cross fists"},

		// Colors
		{Word: "red", Category: "colors", Description: "R hand waves"},
		{Word: "blue", Category: "colors", Description: "B hand waves"},
		{Word: "green", Category: "colors", Description: "G hand waves"},
		{Word: "yellow", Category: "colors", Description: "Y hand waves"},
		{Word: "black", Category: "colors", Description: "Brush hair back"},
		{Word: "white", Category: "colors", Synonyms: []string{"light"}, Description: "Brush palm"},

		// Common phrases
		{Word: "i love you", Category: "phrases", Synonyms: []string{"love you"}, Description: "I-L-Y fingers"},
		{Word: "what's up", Category: "phrases", Synonyms: []string{"sup"}, Description: "Wiggle fingers up"},
		{Word: "see you later", Category: "phrases", Description: "Wave with both hands"},
		{Word: "take care", Category: "phrases", Synonyms: []string{"be careful"}, Description: "Pat heart"},
		{Word: "excuse me", Category: "phrases", Synonyms: []string{"pardon"}, Description: "Wave hand"},
		{Word: "i'm sorry", Category: "phrases", Synonyms: []string{"my apologies"}, Description: "Fist circles on chest"},
		{Word: "no problem", Category: "phrases", Synonyms: []string{"that's fine"}, Description: "Brush off shoulder"},
		{Word: "you're welcome", Category: "phrases", Synonyms: []string{"welcome"}, Description: "Open hands outward"},
	}
}
