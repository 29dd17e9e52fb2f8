// Package campaign implements the campaign recommendation engine.
//
// A chat message flows through three stages: the keyword Classifier picks
// an intent, the Generator runs the audience, channel, message, timing and
// performance sub-generators for that intent and the connected sources, and
// the Renderer turns the finished campaign into a short narrative reply.
// Service ties the stages together for the chat endpoint and adds the
// simulated latency the demo front end expects.
//
// Every table in this package is static. Intents without a dedicated entry
// (lead_generation, seasonal) resolve to the product_promotion defaults, so
// generation never fails.
package campaign
