package mind

// Stage prompts. Each stage is a pure function from its input (and a
// read of memory) to prompt text; the wording follows Hobbes' chapters
// in Leviathan that each stage models.

const sensePrompt = `You are emulating the process of sense perception as described by Thomas Hobbes in Leviathan.

In Hobbes' philosophy, sense is "the original of all thoughts": appearances caused by
external objects working on our sensory organs. For this system, the "external object"
is the following input text:

"%s"

Analyze this input as if it were a sensory impression received by the mind, identifying
the key concepts presented, their qualities, the relationships between them, and any
emotional or value-laden aspects.

Respond with the first 10 words that come to mind for this "sensory impression". They do
not have to form a coherent sentence; they can be sensations, feelings, images, or ideas.`

const simpleImaginationPrompt = `You are emulating simple imagination as described by Thomas Hobbes in Leviathan.

Hobbes defines imagination as "nothing but decaying sense; and is found in men and many
other living creatures, as well sleeping as waking." Simple imagination is recalling
something as it was perceived before.

Current sense impression:
%s

Previous sense impressions (if any):
%s

Simulate how this impression would persist in the mind as a "decaying sense" shortly
after being experienced: what remains strongest, what begins to fade, and how the core
meaning survives as details decay. Remember that for Hobbes, "the longer the time is,
after the sight or sense of any object, the weaker is the imagination."`

const compoundImaginationPrompt = `You are emulating compound imagination as described by Thomas Hobbes in Leviathan.

Hobbes explains compound imagination as when "from the sight of a man at one time, and of
a horse at another, we conceive in our mind a centaur."

Current simple imagination:
%s

Recent sense impressions and imaginations:
%s

Create a compound imagination that combines elements of the current imagination with
elements from previous impressions or general knowledge: a creative recombination that
goes beyond what was directly perceived, a "fiction of the mind". It might include
analogies, hypothetical scenarios, or novel combinations of concepts.`

const unguidedThoughtPrompt = `You are emulating the unguided train of thoughts as described by Thomas Hobbes in Leviathan.

This is wandering, associative thought that flows freely, "without design, and
inconstant; wherein there is no passionate thought to govern and direct those that
follow."

Current topic: %s

Previous thoughts: %s

Generate a train of wandering thoughts on this topic, showing how one thought leads to
another by loose association, as in Hobbes' example of thoughts drifting from civil war
to the value of a Roman penny.`

const regulatedThoughtPrompt = `You are emulating the regulated train of thoughts as described by Thomas Hobbes in Leviathan.

This is purposeful thought, "regulated by some desire and design": "From desire ariseth
the thought of some means we have seen produce the like of that which we aim at; and from
the thought of that, the thought of means to that mean."

Current topic: %s
Goal/Desire: %s

Previous thoughts: %s

Generate a train of regulated thoughts directed toward the stated goal, each thought
leading purposefully to the next, returning to the goal whenever the mind might wander.`

const causeSeekingPrompt = `You are emulating the cause-seeking thought process described by Thomas Hobbes in Leviathan.

This is the first kind of regulated thought, "when of an effect imagined we seek the
causes or means that produce it" — backward reasoning.

Effect to explain: %s

Generate a train of thoughts that works backward from this effect to possible causes,
considering different candidates and weighing them.`

const effectSeekingPrompt = `You are emulating the effect-seeking thought process described by Thomas Hobbes in Leviathan.

This is the second kind of regulated thought, "when imagining anything whatsoever, we
seek all the possible effects that can by it be produced" — forward reasoning that
Hobbes notes is unique to humans.

Cause to consider: %s

Generate a train of thoughts that works forward from this cause to possible effects,
imagining various consequences and developments.`

const extractGoalPrompt = `Given this user input: "%s"

Extract a clear goal or desire that would direct regulated thought in the Hobbesian
sense. What would someone asking this ultimately want to achieve or understand?

Goal:`

const routeQueryPrompt = `Given this user input: "%s"

Determine if the user is more likely seeking:
1. The CAUSES of something (why or how something happened or exists)
2. The EFFECTS of something (what would result from or follow something)

Answer with just "CAUSES" or "EFFECTS":`

const synthesizePrompt = `You are a philosophical AI system modeled after Thomas Hobbes' understanding of human
cognition. You have processed the user's question through multiple Hobbesian thought
processes:

%s

Based on these thought processes, craft a thoughtful, philosophical response to:
"%s"

Integrate insights from the different processes, showing how the sequence from sense to
imagination to trains of thought leads to understanding. Be philosophical yet accessible.`

const synthesizeSystemMessage = `You respond as a mind assembled from Hobbesian thought processes, integrating their products into one coherent voice.`

const simpleImaginationSummaryTemplate = `Summarize these simple imaginations, emphasizing the decay described by Hobbes:

{entries}

Create a summary that shows how these impressions have weakened over time. As Hobbes
writes: "By time, and by length of time, the image itself weareth out." Focus on what
core essence remains after details have faded.`

const compoundImaginationSummaryTemplate = `Summarize these compound imaginations, which Hobbes describes as "fictions of the mind":

{entries}

Create a synthesis that shows how these creative combinations have evolved, focusing on
the novel connections constructed from simpler impressions.`

const conversationSummaryTemplate = `Summarize the following conversation exchanges while preserving the key points:

{entries}

Create a concise summary that captures the essential information. Focus on the main
topics, requests, and responses while reducing the length significantly.`
