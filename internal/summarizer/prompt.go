package summarizer

// systemPrompt fixes the summarizer role. The Vakilsearch correction
// covers a recurring proper-noun mis-transcription in these calls.
const systemPrompt = `You are a helpful assistant that summarizes legal call transcripts. Your job is to extract
the most important information and present it in a clear, structured JSON format. Focus only on
extracting key points and action items from the transcript. The transcript might contain some transcription errors.
These calls are being made from experts on behalf of Vakilsearch.com. Correct any mis-pronunciations of the name Vakilsearch.`

// userPromptTemplate embeds the transcript verbatim via fmt.Sprintf and
// pins the exact JSON shape the parser expects.
const userPromptTemplate = `Please summarize the following legal call transcript into a structured JSON format.

Extract and organize the information into the following sections:

1. **Key Points**: Provide 3-5 bullet points summarizing the most important details discussed.
2. **Action Items**: For each action item, include:
   - **Title**: A short title for the action item.
   - **Task**: The specific task to be completed.
   - **Description**: Additional details about the task.
   - **Deadline**: The deadline, if mentioned.

Format the response as a JSON object with the structure:

{
  "summary": {
    "key_points": ["<Point 1>", "<Point 2>", "<Point 3>"],
    "action_items": [
      {"title": "<Action Item Title>", "task": "<Action Item 1>", "description": "<Description>", "deadline": "<Deadline (if applicable)>"},
      {"title": "<Action Item Title>", "task": "<Action Item 2>", "description": "<Description>", "deadline": "<Deadline (if applicable)>"}
    ]
  }
}

Return ONLY the JSON object with no additional text or explanation. Ensure it is properly formatted JSON.

Here's the transcript:
%s`
