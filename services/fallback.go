package services

// fallbackPitch is the canned pitch returned when the generation endpoint
// fails. Degrading to demo content instead of erroring is deliberate.
var fallbackPitch = PitchContent{
	ProjectName:            "HydroTrack",
	Tagline:                "Stay Hydrated, Stay Healthy - Smart Water Tracking",
	ProblemStatement:       "Many people struggle to maintain proper hydration throughout the day, leading to decreased energy, poor concentration, and health issues. Traditional water tracking methods are tedious and easy to forget.",
	Solution:               "HydroTrack is an intelligent mobile app that automatically tracks your water intake and sends personalized reminders based on your activity level, local weather conditions, and personal health goals. The app uses smart algorithms to optimize your hydration schedule.",
	UniqueValueProposition: "Unlike generic reminder apps, HydroTrack adapts to your lifestyle by considering multiple factors like exercise, climate, and health metrics. The gamification system with challenges and rewards makes staying hydrated fun and engaging, increasing long-term adherence.",
	TargetAudience:         "Health-conscious individuals, fitness enthusiasts, and anyone looking to improve their daily water intake habits. Primary target is adults aged 25-45 who use fitness trackers and health apps.",
	MarketOpportunity:      "The global digital health market is expected to reach $500B by 2025. With growing awareness about hydration's impact on health and productivity, HydroTrack taps into a massive market of health-conscious consumers seeking simple, effective wellness solutions.",
	PitchContent:           "Imagine never feeling dehydrated again. HydroTrack is more than just a water reminder app - it's your personal hydration coach. By analyzing your activity levels, weather conditions, and health goals, we deliver smart, personalized reminders that actually work. Our gamification system transforms a daily necessity into an engaging challenge, with rewards that keep you motivated. We're targeting the $500B digital health market, starting with 100M+ fitness app users who already track their health metrics. With HydroTrack, proper hydration becomes effortless, leading to better energy, focus, and overall wellness. Join us in revolutionizing how people stay healthy, one glass at a time.",
}
