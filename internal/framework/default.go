package framework

var defaultDimensions = []Dimension{
	{Name: "Leading Self", First: 1, Last: 5,
		Description: "Personal effectiveness, self-management, and leading by example."},
	{Name: "Developing Others", First: 6, Last: 10,
		Description: "Growing capability in individuals and teams."},
	{Name: "Building High-Performing Teams", First: 11, Last: 15,
		Description: "Creating the conditions for teams to thrive."},
	{Name: "Driving Results", First: 16, Last: 20,
		Description: "Delivering performance through others."},
	{Name: "Leading Change", First: 21, Last: 25,
		Description: "Navigating teams through uncertainty and transformation."},
	{Name: "Communicating & Influencing", First: 26, Last: 30,
		Description: "Connecting with others and getting buy-in."},
	{Name: "Building Trust", First: 31, Last: 35,
		Description: "Creating psychological safety and credibility."},
	{Name: "Thinking Strategically", First: 36, Last: 40,
		Description: "Seeing the bigger picture and planning ahead."},
	{Name: "Performance Excellence", First: 41, Last: 45,
		Description: "Driving business performance through structured problem-solving."},
}

var defaultItems = map[int]string{
	1:  "Maintains a healthy balance between strategic leadership and day-to-day management",
	2:  "Manages their time effectively, focusing on high-value activities rather than firefighting",
	3:  "Delegates appropriately rather than taking on too much themselves",
	4:  "Stays calm and composed under pressure",
	5:  "Is open to feedback on their own leadership and actively works to improve",
	6:  "Invests time in developing their team members as individuals",
	7:  "Has meaningful development conversations, not just operational catch-ups",
	8:  "Creates an environment where people are encouraged to learn and grow",
	9:  "Helps their people think through problems rather than simply providing answers",
	10: "Builds the capability of their team to operate more independently over time",
	11: "Builds teams that work well together and support each other",
	12: "Addresses dysfunctional team dynamics rather than ignoring them",
	13: "Brings positive energy to their team, even in challenging times",
	14: "Adapts their leadership style to what different team members need",
	15: "Challenges people to perform while genuinely caring about them as individuals",
	16: "Sets clear expectations so people know what success looks like",
	17: "Holds people accountable for their commitments in a fair and consistent way",
	18: "Makes timely decisions rather than delaying unnecessarily",
	19: "Follows through on agreed actions and expects the same from others",
	20: "Maintains focus on priorities rather than being distracted by less important issues",
	21: "Helps their team understand the reasons behind changes",
	22: "Supports their people through uncertainty rather than leaving them to cope alone",
	23: "Encourages new ideas and ways of working",
	24: "Adapts their approach when circumstances change rather than sticking rigidly to plans",
	25: "Builds commitment to change rather than just compliance",
	26: "Listens well and considers different perspectives before reaching conclusions",
	27: "Communicates clearly so people understand what's expected",
	28: "Keeps people appropriately informed rather than leaving them guessing",
	29: "Adapts their communication style to different audiences",
	30: "Is able to influence others without relying on positional authority",
	31: "Does what they say they will do",
	32: "Is honest even when the message is difficult",
	33: "Shares information openly rather than keeping people in the dark",
	34: "Acknowledges and celebrates good work",
	35: "Creates an environment where people feel safe to speak up",
	36: "Thinks beyond their immediate area to consider wider organisational impact",
	37: "Balances short-term pressures with longer-term priorities",
	38: "Builds effective relationships with key stakeholders across the business",
	39: "Involves their team in shaping direction rather than dictating it",
	40: "Identifies and manages risks before they become problems",
	41: "Uses the Performance Excellence framework to prioritise opportunities based on data rather than instinct",
	42: "Clearly defines problem statements before jumping into solutions",
	43: "Breaks larger issues into structured, manageable stages to ensure problems are solved at the right level",
	44: "Engages the right people at each stage of the funnel to validate assumptions and strengthen solutions",
	45: "Follows through on improvement actions and tracks impact to ensure benefits are realised and sustained",
	46: "Overall, is an effective leader",
	47: "I would want to work with this person again",
}

var defaultOverall = []int{46, 47}

// Default returns the 47-item, nine-dimension leadership framework.
func Default() *Framework {
	fw, err := New(defaultDimensions, defaultItems, defaultOverall)
	if err != nil {
		panic("default framework is invalid: " + err.Error())
	}
	return fw
}
